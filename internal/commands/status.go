package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"punchclock/internal/db"
	"punchclock/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status [charge-number]",
	Short: "Show open sessions and breaks",
	Long: `Show open sessions, optionally filtered to one charge number. With
--watch and a charge number, opens a live clock for the active session.

Examples:
  punchclock status               # all open sessions
  punchclock status ACME-001      # one charge number
  punchclock status ACME-001 --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *db.Store) error {
		chargeNumber := ""
		if len(args) == 1 {
			chargeNumber = args[0]
		}

		watch, _ := cmd.Flags().GetBool("watch")
		if watch {
			if chargeNumber == "" {
				return fmt.Errorf("--watch needs a charge number")
			}
			session, err := store.ActiveSession(chargeNumber)
			if err != nil {
				return err
			}
			if session == nil {
				return fmt.Errorf("%w for %s", db.ErrNoActiveSession, chargeNumber)
			}
			return tui.RunClock(store, session)
		}

		sessions, err := store.OpenSessions(chargeNumber)
		if err != nil {
			return err
		}

		if len(sessions) == 0 {
			fmt.Println("No open sessions")
			return nil
		}

		for _, session := range sessions {
			elapsed := time.Since(session.PunchIn)
			fmt.Printf("⏱️  %s (session #%d): punched in at %s, %s elapsed",
				session.ChargeNumber, session.ID,
				session.PunchIn.Format("15:04:05"), formatDuration(elapsed))

			open, err := store.OpenBreaks(session.ID)
			if err != nil {
				return err
			}
			if len(open) > 0 {
				fmt.Printf(", on break since %s", open[len(open)-1].BreakStart.Format("15:04:05"))
			}
			fmt.Println()
		}
		return nil
	}),
}

func init() {
	statusCmd.Flags().Bool("watch", false, "Open a live clock for the active session")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
