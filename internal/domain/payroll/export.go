package payroll

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Column layouts for the downloadable summary. The short variant is
// what the payslip sheet template expects; the full variant carries
// the separate base/OT/holiday totals.
var (
	shortHeader = []string{"Employee_ID", "Name", "Reg_Hrs", "OT_Hrs", "Net_Pay"}
	fullHeader  = []string{"Employee_ID", "Name", "Reg_Hrs", "OT_Hrs", "Total_Base_Pay", "Total_OT_Pay", "Total_Hol_Pay", "Grand_Total"}
)

// WriteSummaryCSV writes the period summary. Amounts are rounded to
// two decimals here and only here; aggregation upstream stays in full
// float precision.
func WriteSummaryCSV(w io.Writer, result Result, full bool) error {
	writer := csv.NewWriter(w)

	header := shortHeader
	if full {
		header = fullHeader
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range result.Rows {
		record := []string{
			row.EmployeeID,
			row.Name,
			money(row.TotalRegHours),
			money(row.TotalOTHours),
		}
		if full {
			record = append(record,
				money(row.TotalBasePay),
				money(row.TotalOTPay),
				money(row.TotalHolidayPay),
				money(row.GrandTotal),
			)
		} else {
			record = append(record, money(row.GrandTotal))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
