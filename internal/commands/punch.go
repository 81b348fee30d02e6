package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"punchclock/internal/db"
	"punchclock/internal/report"
)

var punchinCmd = &cobra.Command{
	Use:   "punchin <charge-number>",
	Short: "Punch in on a charge number",
	Long: `Punch in on a charge number, starting a new session. The project's
current hourly rate is snapshotted onto the session; changing the rate
later does not affect it.

Examples:
  punchclock punchin ACME-001
  punchclock punchin ACME-001 --at 9:00`,
	Args: cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *db.Store) error {
		chargeNumber := args[0]

		now, err := eventTime(cmd)
		if err != nil {
			return err
		}

		session, err := store.PunchIn(chargeNumber, now)
		if err != nil {
			return err
		}

		fmt.Printf("⏱️  Punched in on %s (session #%d)\n", session.ChargeNumber, session.ID)
		fmt.Printf("Punched in at: %s, rate %.2f/h\n", session.PunchIn.Format("15:04:05"), session.HourlyRate)
		return nil
	}),
}

var punchoutCmd = &cobra.Command{
	Use:   "punchout <charge-number>",
	Short: "Punch out of a charge number",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *db.Store) error {
		chargeNumber := args[0]

		now, err := eventTime(cmd)
		if err != nil {
			return err
		}

		session, err := store.PunchOut(chargeNumber, now)
		if err != nil {
			return err
		}

		breaks, err := store.ClosedBreaks(session.ID)
		if err != nil {
			return err
		}
		e := report.Compute(*session, breaks)

		fmt.Printf("⏹️  Punched out of %s (session #%d)\n", session.ChargeNumber, session.ID)
		fmt.Printf("Worked %.2fh net, earned %.2f\n", e.NetHours, e.Earnings)
		return nil
	}),
}

func init() {
	addAtFlag(punchinCmd)
	addAtFlag(punchoutCmd)
}
