// Package server exposes the calculation engine as a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/finance-calc/internal/config"
	"github.com/iwvelando/finance-calc/internal/metrics"
	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/export"
	"github.com/iwvelando/finance-calc/pkg/investments"
	"github.com/iwvelando/finance-calc/pkg/loans"
	"github.com/iwvelando/finance-calc/pkg/validation"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// RateConverter converts amounts between currencies; failures must surface
// as errors rather than silent 1:1 conversions.
type RateConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	converter   RateConverter
}

// NewHandler constructs the HTTP handler that serves the calculation API.
// The converter may be nil, in which case /api/convert reports the service
// as unconfigured.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string, converter RateConverter) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion, converter: converter}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/loan", h.instrument("loan", h.handleLoan))
	mux.HandleFunc("/api/loan/schedule", h.instrument("loan_schedule", h.handleLoanSchedule))
	mux.HandleFunc("/api/investment", h.instrument("investment", h.handleInvestment))
	mux.HandleFunc("/api/convert", h.instrument("convert", h.handleConvert))
	mux.HandleFunc("/api/config/export", h.instrument("config_export", h.handleConfigExport))
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// instrument wraps a handler with request counting and latency tracking.
func (h *handler) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)
		metrics.Requests.WithLabelValues(endpoint, strconv.Itoa(recorder.status)).Inc()
		metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loanRequest mirrors the config.Loan fields accepted over the API.
type loanRequest struct {
	Name             string  `json:"name"`
	Shape            string  `json:"shape"`
	Principal        float64 `json:"principal"`
	HomePrice        float64 `json:"homePrice"`
	DownPayment      float64 `json:"downPayment"`
	InterestRate     float64 `json:"interestRate"`
	TermYears        int     `json:"termYears"`
	GraceKind        string  `json:"graceKind"`
	GraceMonths      int     `json:"graceMonths"`
	ExtraKind        string  `json:"extraKind"`
	ExtraMonthly     float64 `json:"extraMonthly"`
	ExtraYearly      float64 `json:"extraYearly"`
	ExtraYearlyMonth int     `json:"extraYearlyMonth"`
	MonthlyTax       float64 `json:"monthlyTax"`
	MonthlyInsurance float64 `json:"monthlyInsurance"`
	MonthlyHOA       float64 `json:"monthlyHoa"`
}

func (req *loanRequest) toConfig() config.Loan {
	return config.Loan{
		Name:         req.Name,
		Shape:        req.Shape,
		Principal:    req.Principal,
		HomePrice:    req.HomePrice,
		DownPayment:  req.DownPayment,
		InterestRate: req.InterestRate,
		TermYears:    req.TermYears,
		Grace: config.GracePolicy{
			Kind:   req.GraceKind,
			Months: req.GraceMonths,
		},
		ExtraPayments: config.ExtraPayments{
			Kind:          req.ExtraKind,
			MonthlyAmount: req.ExtraMonthly,
			YearlyAmount:  req.ExtraYearly,
			YearlyMonth:   req.ExtraYearlyMonth,
		},
		MonthlyTax:       req.MonthlyTax,
		MonthlyInsurance: req.MonthlyInsurance,
		MonthlyHOA:       req.MonthlyHOA,
	}
}

type loanResponse struct {
	Name     string                    `json:"name,omitempty"`
	Shape    string                    `json:"shape"`
	Payment  *loans.PaymentResult      `json:"payment,omitempty"`
	Grace    *loans.GraceResult        `json:"grace,omitempty"`
	Balloon  *loans.BalloonResult      `json:"balloon,omitempty"`
	Bullet   *loans.BulletResult       `json:"bullet,omitempty"`
	Extra    *loans.ExtraPaymentResult `json:"extra,omitempty"`
	Mortgage *loans.MortgageResult     `json:"mortgage,omitempty"`
	Warnings []string                  `json:"warnings,omitempty"`
	Duration string                    `json:"duration"`
}

func (h *handler) handleLoan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req loanRequest
	if !h.decodeRequest(w, r, &req, "server.handleLoan") {
		return
	}

	loan := req.toConfig()
	if loan.Shape == "" {
		loan.Shape = config.ShapeAmortizing
	}

	principal := loan.EffectivePrincipal()
	warnings := validation.ValidateLoanTerms(loan.Name, principal, loan.InterestRate, loan.TermYears)
	warnings = append(warnings, validation.ValidateGracePolicy(loan.Name, loan.GracePolicy())...)
	warnings = append(warnings, validation.ValidateExtraPaymentPolicy(loan.Name, loan.ExtraPaymentPolicy())...)

	resp := loanResponse{Name: loan.Name, Shape: loan.Shape, Warnings: warnings}

	switch loan.Shape {
	case config.ShapeBalloon:
		result := loans.ComputeBalloon(principal, loan.InterestRate, loan.TermYears)
		resp.Balloon = &result
	case config.ShapeBullet:
		result := loans.ComputeBullet(principal, loan.InterestRate, loan.TermYears)
		resp.Bullet = &result
	case config.ShapeAmortizing:
		grace := loans.ComputeWithGrace(principal, loan.InterestRate, loan.TermYears, loan.GracePolicy())
		resp.Payment = &grace.PaymentResult
		if loan.GracePolicy().Kind != loans.GraceNone && loan.GracePolicy().Months > 0 {
			resp.Grace = &grace
		}

		extra := loans.SimulateExtraPayments(principal, loan.InterestRate, loan.TermYears, loan.ExtraPaymentPolicy())
		if loan.ExtraPaymentPolicy().Active() {
			resp.Extra = &extra
		}

		if loan.HomePrice > 0 || loan.MonthlyTax > 0 || loan.MonthlyInsurance > 0 || loan.MonthlyHOA > 0 {
			mortgage := loans.ComputeMortgage(loans.MortgageTerms{
				HomePrice:         loan.HomePrice,
				DownPayment:       loan.DownPayment,
				AnnualRatePercent: loan.InterestRate,
				Years:             loan.TermYears,
				MonthlyTax:        loan.MonthlyTax,
				MonthlyInsurance:  loan.MonthlyInsurance,
				MonthlyHOA:        loan.MonthlyHOA,
			})
			resp.Mortgage = &mortgage
		}
	default:
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown loan shape %s", loan.Shape), "server.handleLoan")
		return
	}

	resp.Duration = time.Since(start).String()
	h.writeJSON(w, http.StatusOK, resp)
}

type scheduleRequest struct {
	loanRequest
	Granularity string `json:"granularity"` // monthly, yearly
	Format      string `json:"format"`      // json, csv, pdf
}

type scheduleResponse struct {
	Name      string      `json:"name,omitempty"`
	Rows      []loans.Row `json:"rows"`
	Converged bool        `json:"converged"`
	Duration  string      `json:"duration"`
}

func (h *handler) handleLoanSchedule(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req scheduleRequest
	if !h.decodeRequest(w, r, &req, "server.handleLoanSchedule") {
		return
	}

	loan := req.toConfig()
	principal := loan.EffectivePrincipal()
	generator := loans.NewScheduleGenerator(h.logger)

	var rows []loans.Row
	var converged bool
	switch req.Granularity {
	case "", "monthly":
		rows, converged = generator.Monthly(principal, loan.InterestRate, loan.TermYears, loan.ExtraPaymentPolicy())
	case "yearly":
		rows, converged = generator.Yearly(principal, loan.InterestRate, loan.TermYears, loan.ExtraPaymentPolicy())
	default:
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown granularity %s", req.Granularity), "server.handleLoanSchedule")
		return
	}

	switch req.Format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		if err := export.WriteScheduleCSV(w, rows); err != nil {
			h.logger.Error("failed to write CSV schedule",
				zap.String("op", "server.handleLoanSchedule"),
				zap.Error(err),
			)
		}
		return
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		result := loans.MonthlyPayment(principal, loan.InterestRate, loan.TermYears)
		if err := export.WriteSchedulePDF(w, loan.Name, result, rows); err != nil {
			h.logger.Error("failed to write PDF schedule",
				zap.String("op", "server.handleLoanSchedule"),
				zap.Error(err),
			)
		}
		return
	case "", "json":
	default:
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown format %s", req.Format), "server.handleLoanSchedule")
		return
	}

	h.writeJSON(w, http.StatusOK, scheduleResponse{
		Name:      loan.Name,
		Rows:      rows,
		Converged: converged,
		Duration:  time.Since(start).String(),
	})
}

type investmentRequest struct {
	Name                string  `json:"name"`
	InitialBalance      float64 `json:"initialBalance"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualReturnRate    float64 `json:"annualReturnRate"`
	TermYears           int     `json:"termYears"`
	Format              string  `json:"format"` // json, csv
}

type investmentResponse struct {
	Name     string                   `json:"name,omitempty"`
	Growth   investments.GrowthResult `json:"growth"`
	Rows     []investments.GrowthRow  `json:"rows"`
	Duration string                   `json:"duration"`
}

func (h *handler) handleInvestment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req investmentRequest
	if !h.decodeRequest(w, r, &req, "server.handleInvestment") {
		return
	}

	terms := investments.Terms{
		InitialBalance:      req.InitialBalance,
		MonthlyContribution: req.MonthlyContribution,
		AnnualRatePercent:   req.AnnualReturnRate,
		Years:               req.TermYears,
	}

	if req.Format == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		if err := export.WriteGrowthCSV(w, investments.Schedule(terms)); err != nil {
			h.logger.Error("failed to write CSV growth schedule",
				zap.String("op", "server.handleInvestment"),
				zap.Error(err),
			)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, investmentResponse{
		Name:     req.Name,
		Growth:   investments.ComputeGrowth(terms),
		Rows:     investments.Schedule(terms),
		Duration: time.Since(start).String(),
	})
}

type convertRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

type convertResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
}

func (h *handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !h.decodeRequest(w, r, &req, "server.handleConvert") {
		return
	}

	if h.converter == nil {
		h.respondError(w, http.StatusServiceUnavailable, "currency conversion is not configured", "server.handleConvert")
		return
	}

	converted, err := h.converter.Convert(r.Context(), req.Amount, req.From, req.To)
	if err != nil {
		metrics.RateLookups.WithLabelValues("error").Inc()
		h.respondError(w, http.StatusBadGateway, fmt.Sprintf("currency conversion failed: %v", err), "server.handleConvert")
		return
	}
	metrics.RateLookups.WithLabelValues("success").Inc()

	h.writeJSON(w, http.StatusOK, convertResponse{
		Amount:    req.Amount,
		From:      strings.ToUpper(req.From),
		To:        strings.ToUpper(req.To),
		Converted: converted,
	})
}

// handleConfigExport turns a JSON configuration payload into the YAML
// format the CLI consumes, for download by API clients.
func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	var conf config.Configuration
	if !h.decodeRequest(w, r, &conf, "server.handleConfigExport") {
		return
	}

	yamlText, err := ConfigYAML(&conf)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleConfigExport")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": yamlText,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeRequest enforces the method and body-size limits and decodes the
// JSON payload. It writes the error response itself and reports success.
func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}, op string) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}

	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Warn(msg,
		zap.String("op", op),
		zap.Int("status", status),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// ConfigYAML serializes a configuration for download by API clients.
func ConfigYAML(conf *config.Configuration) (string, error) {
	data, err := yaml.Marshal(conf)
	if err != nil {
		return "", fmt.Errorf("failed to encode configuration: %w", err)
	}
	return string(data), nil
}
