package commands

import (
	"time"

	"github.com/spf13/cobra"

	"punchclock/internal/db"
	"punchclock/internal/parser"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "punchclock",
	Short: "A CLI punch clock for billable time",
	Long: `punchclock records punch-in/punch-out sessions and breaks per charge number,
snapshots an hourly rate at punch-in, and reports hours and earnings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// withStore wraps a command function, opening the database first and
// closing it on every exit path.
func withStore(fn func(*cobra.Command, []string, *db.Store) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, err := db.OpenDefault()
		if err != nil {
			return err
		}
		defer store.Close()
		return fn(cmd, args, store)
	}
}

// addAtFlag registers the shared --at timestamp override on a mutating
// command.
func addAtFlag(cmd *cobra.Command) {
	cmd.Flags().String("at", "", `Record the event at this time instead of now (e.g. "9:00", "5:30pm", "2 hours ago")`)
}

// eventTime resolves the timestamp for a mutating command: now, unless
// --at was given.
func eventTime(cmd *cobra.Command) (time.Time, error) {
	at, _ := cmd.Flags().GetString("at")
	if at == "" {
		return time.Now(), nil
	}
	return parser.ParseWhen(at, time.Now())
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(punchinCmd)
	rootCmd.AddCommand(punchoutCmd)
	rootCmd.AddCommand(breakstartCmd)
	rootCmd.AddCommand(breakstopCmd)
	rootCmd.AddCommand(setrateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}
