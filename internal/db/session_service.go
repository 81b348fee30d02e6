package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"punchclock/internal/models"
)

// PunchIn starts a new session for a charge number, snapshotting the
// project's current hourly rate onto the row. A punch-in is always legal:
// an already-open session for the same charge number is not rejected, and
// punch-out/break-start simply resolve against the most recent one.
func (s *Store) PunchIn(chargeNumber string, now time.Time) (*models.Session, error) {
	rate, err := s.GetRate(chargeNumber)
	if err != nil {
		return nil, err
	}

	session := models.Session{
		ChargeNumber: chargeNumber,
		PunchIn:      now,
		HourlyRate:   rate,
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// PunchOut closes the active session for a charge number. The active
// session is the open one with the latest punch-in; punch-in ties go to
// the most recently inserted row.
func (s *Store) PunchOut(chargeNumber string, now time.Time) (*models.Session, error) {
	session, err := s.ActiveSession(chargeNumber)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w for %s", ErrNoActiveSession, chargeNumber)
	}

	session.PunchOut = &now
	if err := s.db.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// ActiveSession returns the open session with the latest punch-in for a
// charge number, or nil when none exists. Nil is not an error here; the
// mutating operations decide whether that's fatal.
func (s *Store) ActiveSession(chargeNumber string) (*models.Session, error) {
	var session models.Session
	err := s.db.
		Where("charge_number = ? AND punch_out IS NULL", chargeNumber).
		Order("punch_in DESC").
		Order("id DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// Sessions returns every session ordered by ascending punch-in, open ones
// included. The report and export layers filter open sessions themselves
// so they can surface a "still open" notice instead of dropping them.
func (s *Store) Sessions() ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.
		Order("punch_in ASC").
		Order("id ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// OpenSessions returns every open session ordered by ascending punch-in,
// optionally filtered to one charge number (empty string means all).
func (s *Store) OpenSessions(chargeNumber string) ([]models.Session, error) {
	q := s.db.Where("punch_out IS NULL")
	if chargeNumber != "" {
		q = q.Where("charge_number = ?", chargeNumber)
	}

	var sessions []models.Session
	if err := q.Order("punch_in ASC").Order("id ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
