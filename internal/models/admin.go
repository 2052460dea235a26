package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin roles.
const (
	RoleSuperAdmin = 1
	RoleModerator  = 2
)

// Admin represents a symposium administrator.
type Admin struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	AdminID   string    `json:"adminId" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Role      int       `json:"role" gorm:"not null"` // 1 super admin, 2 moderator
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
