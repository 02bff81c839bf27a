package models

import (
	"time"

	"gorm.io/gorm"
)

// Model is the base model for all other models in the billing tracker.
type Model struct {
	ID        uint64         `json:"id" example:"4"` // The ID of the resource
	CreatedAt time.Time      `json:"created_at" example:"2024-04-02T19:28:44.491514Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2024-04-17T20:14:01.048145Z"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
//
// We already store them in UTC, but reading them back
// from sqlite returns them as +0000.
func (m *Model) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}
