package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/iwvelando/finance-calc/internal/config"
	"github.com/iwvelando/finance-calc/internal/currency"
	"github.com/iwvelando/finance-calc/internal/server"
	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/format"
	"github.com/iwvelando/finance-calc/pkg/investments"
	"github.com/iwvelando/finance-calc/pkg/loans"
	"github.com/iwvelando/finance-calc/pkg/output"
	"github.com/iwvelando/finance-calc/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// newCurrencyService builds the exchange-rate service from configuration
// and environment. Returns nil when no rate API is configured.
func newCurrencyService(conf *config.Configuration, logger *zap.Logger) *currency.Service {
	if conf.Currency.BaseURL == "" {
		return nil
	}

	ttl := time.Duration(conf.Currency.CacheTTLMinutes) * time.Minute
	var cache currency.Cache
	if conf.Currency.RedisAddr != "" {
		cache = currency.NewRedisCache(conf.Currency.RedisAddr, ttl)
	} else {
		cache = currency.NewMemoryCache(ttl)
	}

	return currency.NewService(conf.Currency.BaseURL, os.Getenv("CURRENCY_API_KEY"), cache, logger)
}

func runLoans(conf *config.Configuration, outputFormat string, logger *zap.Logger) {
	generator := loans.NewScheduleGenerator(logger)

	for i := range conf.Loans {
		loan := &conf.Loans[i]
		principal := loan.EffectivePrincipal()

		switch loan.Shape {
		case config.ShapeBalloon:
			result := loans.ComputeBalloon(principal, loan.InterestRate, loan.TermYears)
			output.PrettyPayment(os.Stdout, loan.Name, loans.PaymentResult{
				MonthlyPayment: result.MonthlyPayment,
				TotalPayment:   result.TotalPayment,
				TotalInterest:  result.TotalInterest,
			})
			fmt.Printf("Balloon payment | $%s\n", format.NumericCurrency(result.BalloonPayment))
			continue
		case config.ShapeBullet:
			result := loans.ComputeBullet(principal, loan.InterestRate, loan.TermYears)
			fmt.Printf("--- Results for loan %s ---\n", loan.Name)
			fmt.Printf("Final payment  | $%s\n", format.NumericCurrency(result.FinalPayment))
			fmt.Printf("Total interest | $%s\n", format.NumericCurrency(result.TotalInterest))
			continue
		}

		grace := loans.ComputeWithGrace(principal, loan.InterestRate, loan.TermYears, loan.GracePolicy())
		logger.Debug(output.SummaryLine(loan.Name, grace.PaymentResult),
			zap.String("op", "runLoans"),
		)
		output.PrettyPayment(os.Stdout, loan.Name, grace.PaymentResult)

		if loan.ExtraPaymentPolicy().Active() {
			result := generator.SimulateExtraPayments(principal, loan.InterestRate, loan.TermYears, loan.ExtraPaymentPolicy())
			output.PrettyExtraPayments(os.Stdout, loan.Name, result)
		}

		switch loan.Schedule {
		case "monthly":
			rows, _ := generator.Monthly(principal, loan.InterestRate, loan.TermYears, loan.ExtraPaymentPolicy())
			printSchedule(loan.Name, rows, outputFormat)
		case "yearly":
			rows, _ := generator.Yearly(principal, loan.InterestRate, loan.TermYears, loan.ExtraPaymentPolicy())
			printSchedule(loan.Name, rows, outputFormat)
		}
	}
}

func printSchedule(name string, rows []loans.Row, outputFormat string) {
	switch outputFormat {
	case constants.OutputFormatCSV:
		output.CsvSchedule(os.Stdout, rows)
	default:
		output.PrettySchedule(os.Stdout, name, rows)
	}
}

func runInvestments(conf *config.Configuration, outputFormat string) {
	for i := range conf.Investments {
		inv := &conf.Investments[i]
		terms := investments.Terms{
			InitialBalance:      inv.InitialBalance,
			MonthlyContribution: inv.MonthlyContribution,
			AnnualRatePercent:   inv.AnnualReturnRate,
			Years:               inv.TermYears,
		}

		result := investments.ComputeGrowth(terms)
		output.PrettyGrowth(os.Stdout, inv.Name, result)

		if outputFormat == constants.OutputFormatCSV {
			output.CsvGrowthSchedule(os.Stdout, investments.Schedule(terms))
		}
	}
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "run the HTTP API server instead of printing results")
	flag.Parse()

	// Optional .env for the currency API key.
	_ = godotenv.Load()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *serve {
		var converter server.RateConverter
		if service := newCurrencyService(conf, logger); service != nil {
			converter = service
		}
		handler := server.NewHandler(logger, conf.Server.MaxBodyBytes, version, converter)
		logger.Info("starting API server",
			zap.String("op", "main"),
			zap.String("address", conf.Server.Address),
		)
		if err := http.ListenAndServe(conf.Server.Address, handler); err != nil {
			logger.Fatal("server exited",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	runLoans(conf, outputFormat, logger)
	runInvestments(conf, outputFormat)
}
