// Package format renders engine outputs as display strings. Rounding
// happens here, never inside the calculation packages.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/finance-calc/pkg/constants"
)

// Percent renders an annual rate percentage (e.g., "6.50%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// Months renders a month count as years and months (e.g., "5 years 3 months").
func Months(months int) string {
	years := months / constants.MonthsPerYear
	rem := months % constants.MonthsPerYear
	switch {
	case years == 0:
		return fmt.Sprintf("%d months", rem)
	case rem == 0:
		return fmt.Sprintf("%d years", years)
	default:
		return fmt.Sprintf("%d years %d months", years, rem)
	}
}

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
