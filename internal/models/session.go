package models

import (
	"time"
)

// Session is one punch-in to punch-out work interval for a charge number.
// A session is open while PunchOut is nil. HourlyRate is the project's
// rate at punch-in time; later setrate calls do not affect it.
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ChargeNumber string     `gorm:"index;not null" json:"charge_number"`
	PunchIn      time.Time  `gorm:"not null" json:"punch_in"`
	PunchOut     *time.Time `json:"punch_out"`
	HourlyRate   float64    `json:"hourly_rate"`

	// Relationships
	Breaks []Break `gorm:"foreignKey:SessionID" json:"breaks"`
}

// Open reports whether the session has not been punched out yet.
func (s Session) Open() bool {
	return s.PunchOut == nil
}

// Break is a sub-interval within a session excluded from billable time.
// Open while BreakEnd is nil; immutable once closed.
type Break struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SessionID  uint       `gorm:"index;not null" json:"session_id"`
	BreakStart time.Time  `gorm:"not null" json:"break_start"`
	BreakEnd   *time.Time `json:"break_end"`
}

// Open reports whether the break has not been stopped yet.
func (b Break) Open() bool {
	return b.BreakEnd == nil
}
