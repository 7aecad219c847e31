package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// SummaryPDF renders the period summary as a printable sheet.
func SummaryPDF(result Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payroll Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		result.Start.Format("2006-01-02"), result.End.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(28, 7, "Employee")
	pdf.Cell(50, 7, "Name")
	pdf.Cell(22, 7, "Reg Hrs")
	pdf.Cell(22, 7, "OT Hrs")
	pdf.Cell(30, 7, "Net Pay")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range result.Rows {
		pdf.Cell(28, 7, row.EmployeeID)
		pdf.Cell(50, 7, row.Name)
		pdf.Cell(22, 7, fmt.Sprintf("%.2f", row.TotalRegHours))
		pdf.Cell(22, 7, fmt.Sprintf("%.2f", row.TotalOTHours))
		pdf.Cell(30, 7, fmt.Sprintf("%.2f", row.GrandTotal))
		pdf.Ln(7)
	}

	if len(result.Warnings) > 0 {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "I", 9)
		for _, warning := range result.Warnings {
			pdf.Cell(0, 6, fmt.Sprintf("Warning: %s has no rate card (%d entries paid at zero)",
				warning.EmployeeID, warning.Entries))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
