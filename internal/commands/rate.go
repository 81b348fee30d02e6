package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"punchclock/internal/db"
)

var setrateCmd = &cobra.Command{
	Use:   "setrate <charge-number> <hourly-rate>",
	Short: "Set the hourly rate for a charge number",
	Long: `Set the hourly rate for a charge number, creating the project if it
doesn't exist. The rate only applies to sessions punched in afterwards;
already-recorded sessions keep the rate they were opened with.`,
	Args: cobra.ExactArgs(2),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *db.Store) error {
		chargeNumber := args[0]

		rate, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid hourly rate '%s'", args[1])
		}

		project, err := store.SetRate(chargeNumber, rate)
		if err != nil {
			return err
		}

		fmt.Printf("💰 Rate for %s set to %.2f/h\n", project.ChargeNumber, project.HourlyRate)
		return nil
	}),
}
