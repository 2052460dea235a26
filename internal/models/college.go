package models

import (
	"time"

	"github.com/google/uuid"
)

// College represents one college in the invite list. RegisteredStatus flips
// to true once any leader from that college signs up.
type College struct {
	ID               uuid.UUID `json:"-" gorm:"type:text;primaryKey"`
	CollegeID        string    `json:"collegeId" gorm:"uniqueIndex;not null"`
	Name             string    `json:"name" gorm:"not null"`
	State            string    `json:"state" gorm:"not null"`
	District         string    `json:"district" gorm:"not null"`
	RegisteredStatus bool      `json:"registeredStatus" gorm:"default:false"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}
