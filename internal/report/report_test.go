package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchclock/internal/models"
)

// breaksFromMap builds a BreaksFunc over fixture data.
func breaksFromMap(m map[uint][]models.Break) BreaksFunc {
	return func(sessionID uint) ([]models.Break, error) {
		return m[sessionID], nil
	}
}

func fixtureSessions() ([]models.Session, BreaksFunc) {
	s1 := closedSession("ACME-001", 25.0, ts(9, 0), ts(17, 0))
	s1.ID = 1
	s2 := models.Session{ID: 2, ChargeNumber: "BETA-7", PunchIn: ts(10, 0)} // still open
	s3 := closedSession("BETA-7", 40.0, ts(18, 0), ts(19, 0))
	s3.ID = 3
	s4 := closedSession("ACME-001", 25.0, ts(19, 0), ts(20, 0))
	s4.ID = 4

	breaks := map[uint][]models.Break{
		1: {{ID: 1, SessionID: 1, BreakStart: ts(12, 0), BreakEnd: tsp(12, 30)}},
	}

	return []models.Session{s1, s2, s3, s4}, breaksFromMap(breaks)
}

func TestWriteReport(t *testing.T) {
	sessions, breaksFor := fixtureSessions()

	var buf strings.Builder
	require.NoError(t, WriteReport(&buf, sessions, breaksFor))
	out := buf.String()

	assert.Contains(t, out,
		"#1 ACME-001: 01/01/24 09:00 AM to 01/01/24 05:00 PM  gross 8.00h  breaks 0.50h  net 7.50h  @ 25.00/h = 187.50")
	assert.Contains(t, out, "#2 BETA-7: punched in 01/01/24 10:00 AM, is still open")
	assert.Contains(t, out, "#3 BETA-7:")
	assert.Contains(t, out, "#4 ACME-001:")
}

func TestWriteReportTotalsFirstSeenOrder(t *testing.T) {
	sessions, breaksFor := fixtureSessions()

	var buf strings.Builder
	require.NoError(t, WriteReport(&buf, sessions, breaksFor))
	out := buf.String()

	// ACME-001 was seen first among closed sessions, so it totals first,
	// even though its last session comes after BETA-7's.
	acme := strings.Index(out, "ACME-001: 8.50h, 212.50 earned")
	beta := strings.Index(out, "BETA-7: 1.00h, 40.00 earned")
	require.GreaterOrEqual(t, acme, 0)
	require.GreaterOrEqual(t, beta, 0)
	assert.Less(t, acme, beta)
}

func TestWriteReportOpenSessionExcludedFromTotals(t *testing.T) {
	open := models.Session{ID: 1, ChargeNumber: "ACME-001", PunchIn: ts(9, 0)}

	var buf strings.Builder
	require.NoError(t, WriteReport(&buf, []models.Session{open}, breaksFromMap(nil)))
	out := buf.String()

	assert.Contains(t, out, "is still open")
	assert.NotContains(t, out, "Totals:")
}
