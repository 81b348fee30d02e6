package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"punchclock/internal/db"
)

var breakstartCmd = &cobra.Command{
	Use:   "breakstart <charge-number>",
	Short: "Start a break on the active session",
	Long: `Start a break on the active session for a charge number. Break time is
subtracted from the session's billable hours.`,
	Args: cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *db.Store) error {
		chargeNumber := args[0]

		now, err := eventTime(cmd)
		if err != nil {
			return err
		}

		brk, err := store.StartBreak(chargeNumber, now)
		if err != nil {
			return err
		}

		fmt.Printf("☕ Break started on %s at %s\n", chargeNumber, brk.BreakStart.Format("15:04:05"))
		return nil
	}),
}

var breakstopCmd = &cobra.Command{
	Use:   "breakstop <charge-number>",
	Short: "Stop the most recent open break",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *db.Store) error {
		chargeNumber := args[0]

		now, err := eventTime(cmd)
		if err != nil {
			return err
		}

		brk, err := store.StopBreak(chargeNumber, now)
		if err != nil {
			return err
		}

		length := brk.BreakEnd.Sub(brk.BreakStart)
		fmt.Printf("🔙 Break on %s stopped after %s\n", chargeNumber, formatDuration(length))
		return nil
	}),
}

func init() {
	addAtFlag(breakstartCmd)
	addAtFlag(breakstopCmd)
}
