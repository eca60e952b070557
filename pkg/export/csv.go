// Package export writes calculation results to external document formats.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/iwvelando/finance-calc/pkg/investments"
	"github.com/iwvelando/finance-calc/pkg/loans"
)

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// WriteScheduleCSV writes an amortization schedule as CSV with proper
// quoting and escaping.
func WriteScheduleCSV(w io.Writer, rows []loans.Row) error {
	cw := csv.NewWriter(w)

	header := []string{"period", "payment", "principal", "interest", "balance", "cumulative principal", "cumulative interest"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Period),
			money(row.Payment),
			money(row.Principal),
			money(row.Interest),
			money(row.RemainingBalance),
			money(row.CumulativePrincipal),
			money(row.CumulativeInterest),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteGrowthCSV writes an investment growth schedule as CSV.
func WriteGrowthCSV(w io.Writer, rows []investments.GrowthRow) error {
	cw := csv.NewWriter(w)

	header := []string{"year", "contributions", "interest", "balance"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Year),
			money(row.Contributions),
			money(row.Interest),
			money(row.Balance),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
