package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"punchclock/internal/db"
	"punchclock/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export [filename]",
	Short: "Export closed sessions as CSV",
	Long: `Export every closed session as CSV, one row per session. Writes to the
named file, or to standard output when the filename is omitted or '-'.
Open sessions are skipped from the CSV body and noted on standard error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *db.Store) error {
		var out io.Writer = os.Stdout
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer f.Close()
			out = f
		}

		sessions, err := store.Sessions()
		if err != nil {
			return err
		}

		return report.WriteCSV(out, os.Stderr, sessions, store.ClosedBreaks)
	}),
}
