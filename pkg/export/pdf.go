package export

import (
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/iwvelando/finance-calc/pkg/format"
	"github.com/iwvelando/finance-calc/pkg/loans"
)

// schedulePageRows is the number of table rows per PDF page before a new
// header is emitted.
const schedulePageRows = 40

// WriteSchedulePDF renders a loan summary and amortization table as a PDF
// document. Standard PDF fonts expect Latin-1, so values are formatted
// with plain ASCII currency strings.
func WriteSchedulePDF(w io.Writer, name string, result loans.PaymentResult, rows []loans.Row) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Amortization Schedule", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Amortization Schedule: "+name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Monthly payment: "+format.Currency(result.MonthlyPayment), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Total payment: "+format.Currency(result.TotalPayment), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Total interest: "+format.Currency(result.TotalInterest), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeScheduleHeader(pdf)

	pdf.SetFont("Helvetica", "", 9)
	for i, row := range rows {
		if i > 0 && i%schedulePageRows == 0 {
			pdf.AddPage()
			writeScheduleHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.CellFormat(20, 6, strconv.Itoa(row.Period), "1", 0, "R", false, 0, "")
		pdf.CellFormat(38, 6, format.Currency(row.Payment), "1", 0, "R", false, 0, "")
		pdf.CellFormat(38, 6, format.Currency(row.Principal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(38, 6, format.Currency(row.Interest), "1", 0, "R", false, 0, "")
		pdf.CellFormat(38, 6, format.Currency(row.RemainingBalance), "1", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}

func writeScheduleHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(20, 6, "Period", "1", 0, "C", false, 0, "")
	pdf.CellFormat(38, 6, "Payment", "1", 0, "C", false, 0, "")
	pdf.CellFormat(38, 6, "Principal", "1", 0, "C", false, 0, "")
	pdf.CellFormat(38, 6, "Interest", "1", 0, "C", false, 0, "")
	pdf.CellFormat(38, 6, "Balance", "1", 1, "C", false, 0, "")
}
