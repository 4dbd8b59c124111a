package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressSnapshot is one persisted ProgressRecord, stored as the serialized
// JSON payload under its storage key. One row per key, overwritten in full on
// every save.
type ProgressSnapshot struct {
	gorm.Model
	StorageKey string `gorm:"uniqueIndex;not null"`
	Data       []byte `gorm:"not null"`
}

// Roadmap is a generated learning plan saved for a user.
type Roadmap struct {
	ID               string `gorm:"primarykey"` // uuid
	UserID           uint   `gorm:"index"`
	Track            string
	Goals            string
	TimeAvailability string
	CurrentLevel     string
	Plan             []byte // serialized roadmap.Plan
	CreatedAt        time.Time
}
