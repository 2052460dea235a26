package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/williamjames2004/sjcaisymposium/internal/models"
)

type CollegeRepository interface {
	CreateMany(colleges []*models.College) (int, error)
	List() ([]*models.College, error)
	MarkRegistered(name string) error
}

type collegeRepository struct{ db *gorm.DB }

func NewCollegeRepository(db *gorm.DB) CollegeRepository { return &collegeRepository{db: db} }

func (r *collegeRepository) CreateMany(colleges []*models.College) (int, error) {
	created := 0
	for _, c := range colleges {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		// Unordered insert: one duplicate does not abort the rest.
		if err := r.db.Create(c).Error; err != nil {
			continue
		}
		created++
	}
	return created, nil
}

func (r *collegeRepository) List() ([]*models.College, error) {
	var cs []*models.College
	err := r.db.Order("name ASC").Find(&cs).Error
	return cs, err
}

func (r *collegeRepository) MarkRegistered(name string) error {
	return r.db.Model(&models.College{}).
		Where("name = ? AND registered_status = ?", name, false).
		Update("registered_status", true).Error
}
