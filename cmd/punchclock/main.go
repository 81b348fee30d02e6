package main

import (
	"errors"
	"fmt"
	"os"

	"punchclock/internal/commands"
	"punchclock/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, db.ErrNoActiveSession) || errors.Is(err, db.ErrNoActiveBreak) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
