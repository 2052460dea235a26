package models

import (
	"time"

	"github.com/google/uuid"
)

// Leader represents a registered team leader. One leader exists per
// (college, department, shift) group and owns up to 15 participant records.
type Leader struct {
	ID           uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	UserID       string    `json:"userid" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	MobileNumber string    `json:"mobilenumber" gorm:"uniqueIndex;not null"`
	Department   string    `json:"department" gorm:"not null"` // cs|it|ai|ds|ca
	College      string    `json:"college" gorm:"not null"`
	Shift        string    `json:"shift" gorm:"not null"` // 1|2
	Password     string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Departments lists the valid department codes.
var Departments = []string{"cs", "it", "ai", "ds", "ca"}

// ValidDepartment reports whether code is a known department.
func ValidDepartment(code string) bool {
	for _, d := range Departments {
		if d == code {
			return true
		}
	}
	return false
}
