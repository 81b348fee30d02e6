package report

import (
	"fmt"
	"io"

	"punchclock/internal/models"
)

// timeLayout is the 12-hour wall-clock format used everywhere a full
// timestamp is shown (report lines and CSV fields).
const timeLayout = "01/02/06 03:04 PM"

// clockLayout is the short 12-hour format used for break boundaries.
const clockLayout = "03:04 PM"

// BreaksFunc looks up the closed breaks for a session id. The Store's
// ClosedBreaks satisfies it; tests substitute a map lookup.
type BreaksFunc func(sessionID uint) ([]models.Break, error)

// projectTotal accumulates per-project sums in first-seen order.
type projectTotal struct {
	chargeNumber string
	earnings     float64
	netHours     float64
}

// WriteReport prints every session with its derived hours and earnings,
// followed by per-project totals in first-seen charge-number order. Open
// sessions are announced but contribute nothing to the totals.
func WriteReport(w io.Writer, sessions []models.Session, breaksFor BreaksFunc) error {
	var totals []projectTotal
	index := map[string]int{}

	for _, session := range sessions {
		if session.Open() {
			fmt.Fprintf(w, "#%d %s: punched in %s, is still open\n",
				session.ID, session.ChargeNumber, session.PunchIn.Format(timeLayout))
			continue
		}

		breaks, err := breaksFor(session.ID)
		if err != nil {
			return err
		}
		e := Compute(session, breaks)

		fmt.Fprintf(w, "#%d %s: %s to %s  gross %.2fh  breaks %.2fh  net %.2fh  @ %.2f/h = %.2f\n",
			session.ID,
			session.ChargeNumber,
			session.PunchIn.Format(timeLayout),
			session.PunchOut.Format(timeLayout),
			float64(e.GrossSeconds)/3600.0,
			float64(e.BreakSeconds)/3600.0,
			e.NetHours,
			session.HourlyRate,
			e.Earnings)

		i, ok := index[session.ChargeNumber]
		if !ok {
			i = len(totals)
			index[session.ChargeNumber] = i
			totals = append(totals, projectTotal{chargeNumber: session.ChargeNumber})
		}
		totals[i].earnings += e.Earnings
		totals[i].netHours += e.NetHours
	}

	if len(totals) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Totals:")
		for _, t := range totals {
			fmt.Fprintf(w, "  %s: %.2fh, %.2f earned\n", t.chargeNumber, t.netHours, t.earnings)
		}
	}

	return nil
}
