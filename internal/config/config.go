// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/loans"
	"github.com/iwvelando/finance-calc/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finance-calc.
type Configuration struct {
	Loans       []Loan         `yaml:"loans,omitempty"`
	Investments []Investment   `yaml:"investments,omitempty"`
	Currency    CurrencyConfig `yaml:"currency,omitempty"`
	Logging     LoggingConfig  `yaml:"logging,omitempty"`
	Output      OutputConfig   `yaml:"output,omitempty"`
	Server      ServerConfig   `yaml:"server,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds HTTP server configuration options
type ServerConfig struct {
	Address      string `yaml:"address,omitempty"`
	MaxBodyBytes int64  `yaml:"maxBodyBytes,omitempty"`
}

// CurrencyConfig holds the exchange-rate service settings. The API key is
// supplied through the environment, never the config file.
type CurrencyConfig struct {
	BaseURL         string `yaml:"baseUrl,omitempty"`
	CacheTTLMinutes int    `yaml:"cacheTtlMinutes,omitempty"`
	RedisAddr       string `yaml:"redisAddr,omitempty"` // empty selects the in-process cache
}

// GracePolicy configures an initial grace phase for a loan.
type GracePolicy struct {
	Kind   string `yaml:"kind,omitempty"` // none, interest_only, no_payment
	Months int    `yaml:"months,omitempty"`
}

// ExtraPayments configures additional principal contributions for a loan.
type ExtraPayments struct {
	Kind          string  `yaml:"kind,omitempty"` // none, extra_monthly, extra_yearly, biweekly
	MonthlyAmount float64 `yaml:"monthlyAmount,omitempty"`
	YearlyAmount  float64 `yaml:"yearlyAmount,omitempty"`
	YearlyMonth   int     `yaml:"yearlyMonth,omitempty"`
}

// Loan indicates a loan and its parameters.
type Loan struct {
	Name             string        `yaml:"name,omitempty"`
	Shape            string        `yaml:"shape,omitempty"` // amortizing, balloon, bullet
	Principal        float64       `yaml:"principal,omitempty"`
	HomePrice        float64       `yaml:"homePrice,omitempty"`
	DownPayment      float64       `yaml:"downPayment,omitempty"`
	InterestRate     float64       `yaml:"interestRate,omitempty"`
	TermYears        int           `yaml:"termYears,omitempty"`
	Grace            GracePolicy   `yaml:"grace,omitempty"`
	ExtraPayments    ExtraPayments `yaml:"extraPayments,omitempty"`
	MonthlyTax       float64       `yaml:"monthlyTax,omitempty"`
	MonthlyInsurance float64       `yaml:"monthlyInsurance,omitempty"`
	MonthlyHOA       float64       `yaml:"monthlyHoa,omitempty"`
	Schedule         string        `yaml:"schedule,omitempty"` // none, monthly, yearly
}

// Investment indicates an investment and its parameters.
type Investment struct {
	Name                string  `yaml:"name,omitempty"`
	InitialBalance      float64 `yaml:"initialBalance,omitempty"`
	MonthlyContribution float64 `yaml:"monthlyContribution,omitempty"`
	AnnualReturnRate    float64 `yaml:"annualReturnRate,omitempty"`
	TermYears           int     `yaml:"termYears,omitempty"`
}

// Loan shape constants
const (
	ShapeAmortizing = "amortizing"
	ShapeBalloon    = "balloon"
	ShapeBullet     = "bullet"
)

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
	if conf.Server.MaxBodyBytes <= 0 {
		conf.Server.MaxBodyBytes = constants.DefaultMaxBodySizeBytes
	}
	if conf.Currency.CacheTTLMinutes <= 0 {
		conf.Currency.CacheTTLMinutes = constants.DefaultRateCacheTTLMinutes
	}
	for i := range conf.Loans {
		if conf.Loans[i].Shape == "" {
			conf.Loans[i].Shape = ShapeAmortizing
		}
	}
}

// GracePolicy converts the config representation to the engine policy.
func (loan *Loan) GracePolicy() loans.GracePolicy {
	kind := loans.GraceKind(loan.Grace.Kind)
	if loan.Grace.Kind == "" {
		kind = loans.GraceNone
	}
	return loans.GracePolicy{Kind: kind, Months: loan.Grace.Months}
}

// ExtraPaymentPolicy converts the config representation to the engine policy.
func (loan *Loan) ExtraPaymentPolicy() loans.ExtraPaymentPolicy {
	kind := loans.ExtraPaymentKind(loan.ExtraPayments.Kind)
	if loan.ExtraPayments.Kind == "" {
		kind = loans.ExtraNone
	}
	return loans.ExtraPaymentPolicy{
		Kind:          kind,
		MonthlyAmount: loan.ExtraPayments.MonthlyAmount,
		YearlyAmount:  loan.ExtraPayments.YearlyAmount,
		YearlyMonth:   loan.ExtraPayments.YearlyMonth,
	}
}

// EffectivePrincipal returns the financed amount: the explicit principal,
// or home price minus down payment when a purchase is described instead.
func (loan *Loan) EffectivePrincipal() float64 {
	if loan.Principal > 0 {
		return loan.Principal
	}
	principal := loan.HomePrice - loan.DownPayment
	if principal < 0 {
		return 0
	}
	return principal
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	for i := range conf.Loans {
		loan := &conf.Loans[i]
		warnings = append(warnings, validation.ValidateLoanTerms(loan.Name, loan.EffectivePrincipal(), loan.InterestRate, loan.TermYears)...)
		warnings = append(warnings, validation.ValidateGracePolicy(loan.Name, loan.GracePolicy())...)
		warnings = append(warnings, validation.ValidateExtraPaymentPolicy(loan.Name, loan.ExtraPaymentPolicy())...)

		switch loan.Shape {
		case ShapeAmortizing, ShapeBalloon, ShapeBullet:
		default:
			warnings = append(warnings, fmt.Sprintf("Loan '%s' has unknown shape %s", loan.Name, loan.Shape))
		}
	}

	for i := range conf.Investments {
		inv := &conf.Investments[i]
		if inv.TermYears <= 0 {
			warnings = append(warnings, fmt.Sprintf("Investment '%s' has non-positive term; all results will be zero", inv.Name))
		}
		if inv.AnnualReturnRate < 0 {
			warnings = append(warnings, fmt.Sprintf("Investment '%s' has a negative return rate", inv.Name))
		}
	}

	return warnings
}
