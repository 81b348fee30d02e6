package commands

import (
	"os"

	"github.com/spf13/cobra"

	"punchclock/internal/db"
	"punchclock/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print hours and earnings per session",
	Long: `Print every recorded session with gross, break, and net hours, the
snapshotted rate and earnings, then per-project totals. Sessions that are
still open are listed but excluded from the totals.`,
	RunE: withStore(func(cmd *cobra.Command, args []string, store *db.Store) error {
		sessions, err := store.Sessions()
		if err != nil {
			return err
		}

		return report.WriteReport(os.Stdout, sessions, store.ClosedBreaks)
	}),
}
