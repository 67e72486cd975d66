package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Statuses shared by the supporting entities.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Base is embedded by every persisted entity. Primary keys are opaque
// generated identifiers assigned just before insert.
type Base struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
