package report

import (
	"fmt"
	"io"
	"strings"

	"punchclock/internal/models"
)

// csvHeader is the fixed column set of the export. The four trailing
// columns after Breaks are placeholders reserved for manual
// post-processing and are always emitted empty (except
// TotalTimeAdjustment, which mirrors break time).
var csvHeader = []string{
	"Job",
	"Clocked In",
	"Clocked Out",
	"Duration",
	"Hourly Rate",
	"Earnings",
	"Comment",
	"Breaks",
	"Adjustments",
	"TotalTimeAdjustment",
	"TotalEarningsAdjustment",
	"TotalMileage",
}

// WriteCSV writes one row per closed session to w. The consuming system
// requires every field double-quoted, which encoding/csv won't do, so
// rows are assembled by hand. Open sessions are skipped from the body but
// announced on diag, and per-project totals go to diag after the body.
func WriteCSV(w io.Writer, diag io.Writer, sessions []models.Session, breaksFor BreaksFunc) error {
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}

	var totals []projectTotal
	index := map[string]int{}

	for _, session := range sessions {
		if session.Open() {
			fmt.Fprintf(diag, "skipping #%d %s: is still open\n", session.ID, session.ChargeNumber)
			continue
		}

		breaks, err := breaksFor(session.ID)
		if err != nil {
			return err
		}
		e := Compute(session, breaks)

		timeAdjustment := ""
		if e.BreakSeconds != 0 {
			timeAdjustment = fmt.Sprintf("-%.2f", float64(e.BreakSeconds)/3600.0)
		}

		row := []string{
			session.ChargeNumber,
			session.PunchIn.Format(timeLayout),
			session.PunchOut.Format(timeLayout),
			fmt.Sprintf("%.2f", e.NetHours),
			fmt.Sprintf("%.2f", session.HourlyRate),
			fmt.Sprintf("%.2f", e.Earnings),
			"", // Comment
			summarizeBreaks(breaks),
			"", // Adjustments
			timeAdjustment,
			"", // TotalEarningsAdjustment
			"", // TotalMileage
		}
		if err := writeRow(w, row); err != nil {
			return err
		}

		i, ok := index[session.ChargeNumber]
		if !ok {
			i = len(totals)
			index[session.ChargeNumber] = i
			totals = append(totals, projectTotal{chargeNumber: session.ChargeNumber})
		}
		totals[i].earnings += e.Earnings
		totals[i].netHours += e.NetHours
	}

	for _, t := range totals {
		fmt.Fprintf(diag, "%s: %.2f earned, %.2fh net\n", t.chargeNumber, t.earnings, t.netHours)
	}

	return nil
}

// summarizeBreaks renders the Breaks column: per closed break, its length
// in hours and its wall-clock boundaries, semicolon-joined.
func summarizeBreaks(breaks []models.Break) string {
	var parts []string
	for _, b := range breaks {
		if b.BreakEnd == nil {
			continue
		}
		hours := b.BreakEnd.Sub(b.BreakStart).Hours()
		parts = append(parts, fmt.Sprintf("%.2fh (%s to %s)",
			hours, b.BreakStart.Format(clockLayout), b.BreakEnd.Format(clockLayout)))
	}
	return strings.Join(parts, "; ")
}

// writeRow quotes every field and terminates the line. Embedded quotes
// are doubled per RFC 4180.
func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := fmt.Fprintln(w, strings.Join(quoted, ","))
	return err
}
