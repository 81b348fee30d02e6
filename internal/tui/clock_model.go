package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"punchclock/internal/db"
	"punchclock/internal/models"
	"punchclock/internal/report"
)

// ClockModel is the live view of one open session: a ticking net-time
// clock plus running earnings. The stopwatch component only drives the
// redraw cadence; displayed time is always recomputed from the session's
// punch-in so the clock survives suspend/resume.
type ClockModel struct {
	width  int
	height int

	store   *db.Store
	session *models.Session

	// Break state at last refresh
	closedBreakSecs int64
	openBreakStart  *time.Time

	ticker stopwatch.Model

	// UI state
	punchingOut bool // True when user pressed P and we're punching out
	exiting     bool // True when user pressed ESC/Q, leaving the session running
	err         error
}

// NewClockModel creates a clock for an open session.
func NewClockModel(store *db.Store, session *models.Session) ClockModel {
	m := ClockModel{
		store:   store,
		session: session,
		ticker:  stopwatch.NewWithInterval(time.Second),
	}
	m.refreshBreaks()
	return m
}

// refreshBreaks re-reads the session's breaks so the net clock and the
// break indicator track what's actually persisted.
func (m *ClockModel) refreshBreaks() {
	m.closedBreakSecs = 0
	m.openBreakStart = nil

	closed, err := m.store.ClosedBreaks(m.session.ID)
	if err != nil {
		m.err = err
		return
	}
	for _, b := range closed {
		m.closedBreakSecs += int64(b.BreakEnd.Sub(b.BreakStart).Seconds())
	}

	open, err := m.store.OpenBreaks(m.session.ID)
	if err != nil {
		m.err = err
		return
	}
	if len(open) > 0 {
		start := open[len(open)-1].BreakStart
		m.openBreakStart = &start
	}
}

// netElapsed is the billable time on the clock right now: gross elapsed
// minus closed breaks minus the currently running break, unclamped.
func (m ClockModel) netElapsed() time.Duration {
	net := time.Since(m.session.PunchIn) - time.Duration(m.closedBreakSecs)*time.Second
	if m.openBreakStart != nil {
		net -= time.Since(*m.openBreakStart)
	}
	return net
}

// Init starts the redraw ticker
func (m ClockModel) Init() tea.Cmd {
	return m.ticker.Init()
}

// Update handles messages
func (m ClockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "b", "B":
			// Toggle a break on the session
			if m.openBreakStart == nil {
				_, m.err = m.store.StartBreak(m.session.ChargeNumber, time.Now())
			} else {
				_, m.err = m.store.StopBreak(m.session.ChargeNumber, time.Now())
			}
			if m.err == nil {
				m.refreshBreaks()
			}
			return m, nil
		case "p", "P":
			// Punch out and leave; the actual write happens in RunClock
			// after the program exits the alt screen.
			m.punchingOut = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Leave the session running
			m.exiting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.ticker, cmd = m.ticker.Update(msg)
	return m, cmd
}

// View renders the clock
func (m ClockModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string

	headerText := "⏱  ON THE CLOCK"
	headerColor := ColorAccentBright
	if m.openBreakStart != nil {
		headerText = "☕ ON BREAK"
		headerColor = ColorWarning
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(headerColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render(headerText))

	chargeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, chargeStyle.Render(
		fmt.Sprintf("%s  ·  session #%d", m.session.ChargeNumber, m.session.ID)))

	components = append(components, m.renderBigClock())

	net := m.netElapsed()
	earnings := net.Hours() * m.session.HourlyRate
	detail := fmt.Sprintf("punched in %s · rate %.2f/h · earned %.2f",
		m.session.PunchIn.Format("15:04:05"), m.session.HourlyRate, earnings)
	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, detailStyle.Render(detail))

	if m.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, errStyle.Render(m.err.Error()))
	}

	content := strings.Join(components, "\n\n")

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderHelpBar())
}

// digit art, 5 rows per rune
var clockDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
	'-': {"     ", "     ", " ███ ", "     ", "     "},
}

// renderBigClock renders the net elapsed time as ASCII art. Negative net
// time (breaks exceeding the session so far) renders with a leading minus
// rather than being clamped.
func (m ClockModel) renderBigClock() string {
	net := m.netElapsed()

	sign := ""
	if net < 0 {
		sign = "-"
		net = -net
	}

	hours := int(net.Hours())
	minutes := int(net.Minutes()) % 60
	seconds := int(net.Seconds()) % 60

	timeStr := fmt.Sprintf("%s%02d:%02d", sign, minutes, seconds)
	if hours > 0 {
		timeStr = fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
	}

	var rows [5]strings.Builder
	for _, char := range timeStr {
		art, ok := clockDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			rows[i].WriteString(art[i])
			rows[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	lines := make([]string, 5)
	for i := 0; i < 5; i++ {
		lines[i] = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width).
			Render(clockStyle.Render(rows[i].String()))
	}

	return strings.Join(lines, "\n")
}

// renderHelpBar renders the help bar at the bottom
func (m ClockModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("b break on/off · p punch out · esc/q leave running · ctrl+c force quit")
}

// RunClock runs the live clock for an open session.
func RunClock(store *db.Store, session *models.Session) error {
	model := NewClockModel(store, session)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	clockModel := finalModel.(ClockModel)
	if clockModel.punchingOut {
		closed, err := store.PunchOut(session.ChargeNumber, time.Now())
		if err != nil {
			return fmt.Errorf("failed to punch out: %w", err)
		}

		breaks, err := store.ClosedBreaks(closed.ID)
		if err != nil {
			return err
		}
		e := report.Compute(*closed, breaks)
		fmt.Printf("⏹️  Punched out of %s (session #%d)\n", closed.ChargeNumber, closed.ID)
		fmt.Printf("📊 Worked %.2fh net, earned %.2f\n", e.NetHours, e.Earnings)
	} else if clockModel.exiting {
		fmt.Printf("\n💡 Still on the clock for %s (session #%d)\n", session.ChargeNumber, session.ID)
		fmt.Printf("   Use 'punchclock status %s' to check it or 'punchclock punchout %s' to close it.\n",
			session.ChargeNumber, session.ChargeNumber)
	}

	return nil
}
