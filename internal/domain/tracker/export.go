package tracker

import (
	"encoding/csv"
	"io"
	"strconv"
)

var exportHeader = []string{"Project", "Task", "Started", "Ended", "Billable", "Hours", "Amount"}

// WriteSessionsCSV dumps sessions for spreadsheet use. Running sessions
// export with an empty Ended column.
func WriteSessionsCSV(w io.Writer, sessions []Session) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	for _, sess := range sessions {
		ended := ""
		if sess.EndedAt != nil {
			ended = sess.EndedAt.Format("2006-01-02 15:04:05")
		}
		record := []string{
			sess.Project,
			sess.Task,
			sess.StartedAt.Format("2006-01-02 15:04:05"),
			ended,
			strconv.FormatBool(sess.Billable),
			strconv.FormatFloat(sess.Hours, 'f', 2, 64),
			strconv.FormatFloat(sess.Amount, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
