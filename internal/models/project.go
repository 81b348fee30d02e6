package models

// Project holds the billing rate for a charge number.
// Rates are snapshotted onto sessions at punch-in, so editing a
// project never rewrites history.
type Project struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	ChargeNumber string  `gorm:"uniqueIndex;not null" json:"charge_number"`
	HourlyRate   float64 `gorm:"not null;default:0" json:"hourly_rate"`
}
