package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchclock/internal/models"
)

func TestWriteCSVHeader(t *testing.T) {
	var body, diag strings.Builder
	require.NoError(t, WriteCSV(&body, &diag, nil, breaksFromMap(nil)))

	lines := strings.Split(strings.TrimRight(body.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t,
		`"Job","Clocked In","Clocked Out","Duration","Hourly Rate","Earnings","Comment","Breaks","Adjustments","TotalTimeAdjustment","TotalEarningsAdjustment","TotalMileage"`,
		lines[0])
}

func TestWriteCSVRow(t *testing.T) {
	sessions, breaksFor := fixtureSessions()

	var body, diag strings.Builder
	require.NoError(t, WriteCSV(&body, &diag, sessions, breaksFor))

	lines := strings.Split(strings.TrimRight(body.String(), "\n"), "\n")
	// Header plus three closed sessions; the open one is skipped.
	require.Len(t, lines, 4)

	assert.Equal(t,
		`"ACME-001","01/01/24 09:00 AM","01/01/24 05:00 PM","7.50","25.00","187.50","","0.50h (12:00 PM to 12:30 PM)","","-0.50","",""`,
		lines[1])

	// No breaks: Breaks and TotalTimeAdjustment stay empty.
	assert.Equal(t,
		`"BETA-7","01/01/24 06:00 PM","01/01/24 07:00 PM","1.00","40.00","40.00","","","","","",""`,
		lines[2])
}

func TestWriteCSVOpenSessionGoesToDiag(t *testing.T) {
	sessions, breaksFor := fixtureSessions()

	var body, diag strings.Builder
	require.NoError(t, WriteCSV(&body, &diag, sessions, breaksFor))

	assert.NotContains(t, body.String(), "still open")
	assert.Contains(t, diag.String(), "skipping #2 BETA-7: is still open")
}

func TestWriteCSVTotalsOnDiag(t *testing.T) {
	sessions, breaksFor := fixtureSessions()

	var body, diag strings.Builder
	require.NoError(t, WriteCSV(&body, &diag, sessions, breaksFor))

	assert.Contains(t, diag.String(), "ACME-001: 212.50 earned, 8.50h net")
	assert.Contains(t, diag.String(), "BETA-7: 40.00 earned, 1.00h net")
}

func TestWriteCSVEveryFieldQuoted(t *testing.T) {
	sessions, breaksFor := fixtureSessions()

	var body, diag strings.Builder
	require.NoError(t, WriteCSV(&body, &diag, sessions, breaksFor))

	for _, line := range strings.Split(strings.TrimRight(body.String(), "\n"), "\n") {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 12)
		for _, f := range fields {
			assert.True(t, strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`),
				"field %q not quoted in line %q", f, line)
		}
	}
}

func TestWriteCSVQuotesEscaped(t *testing.T) {
	s := closedSession(`JOB "X"`, 10.0, ts(9, 0), ts(10, 0))
	s.ID = 1

	var body, diag strings.Builder
	require.NoError(t, WriteCSV(&body, &diag, []models.Session{s}, breaksFromMap(nil)))

	assert.Contains(t, body.String(), `"JOB ""X"""`)
}

func TestSummarizeBreaksJoinsWithSemicolon(t *testing.T) {
	breaks := []models.Break{
		{BreakStart: ts(10, 0), BreakEnd: tsp(10, 15)},
		{BreakStart: ts(12, 0), BreakEnd: tsp(13, 0)},
		{BreakStart: ts(15, 0)}, // open, omitted
	}

	assert.Equal(t,
		"0.25h (10:00 AM to 10:15 AM); 1.00h (12:00 PM to 01:00 PM)",
		summarizeBreaks(breaks))
}
