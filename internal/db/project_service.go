package db

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"punchclock/internal/models"
)

// SetRate upserts the hourly rate for a charge number. No validation on
// the sign of the rate; zero and negative rates are stored as given.
func (s *Store) SetRate(chargeNumber string, rate float64) (*models.Project, error) {
	project := models.Project{
		ChargeNumber: chargeNumber,
		HourlyRate:   rate,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "charge_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"hourly_rate"}),
	}).Create(&project).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the row's real id after an upsert.
	if err := s.db.Where("charge_number = ?", chargeNumber).First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// GetRate returns the stored rate for a charge number, or 0.0 if the
// project has never been registered.
func (s *Store) GetRate(chargeNumber string) (float64, error) {
	var project models.Project
	err := s.db.Where("charge_number = ?", chargeNumber).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0.0, nil
		}
		return 0, err
	}
	return project.HourlyRate, nil
}
