package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/williamjames2004/sjcaisymposium/internal/models"
)

type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByAdminID(adminID string) (*models.Admin, error)
}

type adminRepository struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) AdminRepository { return &adminRepository{db: db} }

func (r *adminRepository) Create(admin *models.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	return r.db.Create(admin).Error
}

func (r *adminRepository) GetByAdminID(adminID string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.First(&a, "admin_id = ?", adminID).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
