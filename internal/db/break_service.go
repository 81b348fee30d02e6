package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"punchclock/internal/models"
)

// StartBreak opens a break under the active session for a charge number.
// It resolves the active session exactly like PunchOut does, and does not
// reject a break that is already open for that session.
func (s *Store) StartBreak(chargeNumber string, now time.Time) (*models.Break, error) {
	session, err := s.ActiveSession(chargeNumber)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w for %s", ErrNoActiveSession, chargeNumber)
	}

	brk := models.Break{
		SessionID:  session.ID,
		BreakStart: now,
	}

	if err := s.db.Create(&brk).Error; err != nil {
		return nil, err
	}

	return &brk, nil
}

// StopBreak closes the most recently started open break belonging to any
// of the charge number's sessions. The search deliberately spans all
// sessions, open or closed, not only the currently active one.
func (s *Store) StopBreak(chargeNumber string, now time.Time) (*models.Break, error) {
	var brk models.Break
	err := s.db.
		Joins("JOIN sessions ON sessions.id = breaks.session_id").
		Where("sessions.charge_number = ? AND breaks.break_end IS NULL", chargeNumber).
		Order("breaks.break_start DESC").
		Order("breaks.id DESC").
		First(&brk).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w for %s", ErrNoActiveBreak, chargeNumber)
		}
		return nil, err
	}

	brk.BreakEnd = &now
	if err := s.db.Save(&brk).Error; err != nil {
		return nil, err
	}

	return &brk, nil
}

// ClosedBreaks returns the closed breaks for a session, in storage order.
func (s *Store) ClosedBreaks(sessionID uint) ([]models.Break, error) {
	var breaks []models.Break
	err := s.db.
		Where("session_id = ? AND break_end IS NOT NULL", sessionID).
		Find(&breaks).Error
	if err != nil {
		return nil, err
	}
	return breaks, nil
}

// OpenBreaks returns the still-open breaks for a session, used by the
// status display.
func (s *Store) OpenBreaks(sessionID uint) ([]models.Break, error) {
	var breaks []models.Break
	err := s.db.
		Where("session_id = ? AND break_end IS NULL", sessionID).
		Order("break_start ASC").
		Find(&breaks).Error
	if err != nil {
		return nil, err
	}
	return breaks, nil
}
