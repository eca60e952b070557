// Package constants provides shared constants for the finance-calc application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// BalanceEpsilon is the balance below which a loan counts as paid off
	BalanceEpsilon = 0.01

	// SafetyCapFactor bounds payoff simulations at this multiple of the
	// scheduled payment count
	SafetyCapFactor = 2

	// BiweeklyExtraDivisor converts one monthly payment into the extra
	// principal implied by 26 biweekly payments per year (one extra
	// monthly payment spread across 12 months)
	BiweeklyExtraDivisor = 12.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// RelativeTolerance is the relative tolerance for cross-checking
	// closed-form results against iterative schedules
	RelativeTolerance = 1e-6
)

// Currency service defaults
const (
	// DefaultRateCacheTTLMinutes is the default exchange-rate cache lifetime
	DefaultRateCacheTTLMinutes = 60
)
