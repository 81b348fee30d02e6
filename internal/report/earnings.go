package report

import (
	"punchclock/internal/models"
)

// Earnings is the derived arithmetic for one closed session.
type Earnings struct {
	GrossSeconds int64
	BreakSeconds int64
	NetSeconds   int64
	NetHours     float64
	Earnings     float64
}

// Compute derives gross, break, and net time plus earnings for a closed
// session. It is a pure function: no I/O, no clock reads, identical input
// gives identical output.
//
// The session must be closed; callers filter open sessions out first.
// Negative values are never clamped: a punch-out before punch-in, or
// breaks exceeding the session span, produce negative seconds and
// negative earnings that flow through to the report untouched.
func Compute(session models.Session, breaks []models.Break) Earnings {
	var e Earnings

	e.GrossSeconds = int64(session.PunchOut.Sub(session.PunchIn).Seconds())

	for _, b := range breaks {
		if b.BreakEnd == nil {
			// Still open, contributes nothing.
			continue
		}
		e.BreakSeconds += int64(b.BreakEnd.Sub(b.BreakStart).Seconds())
	}

	e.NetSeconds = e.GrossSeconds - e.BreakSeconds
	e.NetHours = float64(e.NetSeconds) / 3600.0
	e.Earnings = e.NetHours * session.HourlyRate

	return e
}
