package db

import "errors"

// Sentinel errors for the punch/break state machine. Call sites wrap
// them with the charge number; callers match with errors.Is.
var (
	// ErrNoActiveSession is returned when a punch-out or break-start
	// finds no open session for the charge number.
	ErrNoActiveSession = errors.New("no active session")

	// ErrNoActiveBreak is returned when a break-stop finds no open
	// break under any of the charge number's sessions.
	ErrNoActiveBreak = errors.New("no active break")
)
