package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/williamjames2004/sjcaisymposium/internal/models"
)

type LeaderRepository interface {
	Create(leader *models.Leader) error
	GetByUserID(userID string) (*models.Leader, error)
	GetByEmail(email string) (*models.Leader, error)
	GetByMobile(mobile string) (*models.Leader, error)
	GetByGroup(college, department, shift string) (*models.Leader, error)
}

type leaderRepository struct{ db *gorm.DB }

func NewLeaderRepository(db *gorm.DB) LeaderRepository { return &leaderRepository{db: db} }

func (r *leaderRepository) Create(leader *models.Leader) error {
	if leader.ID == uuid.Nil {
		leader.ID = uuid.New()
	}
	return r.db.Create(leader).Error
}

func (r *leaderRepository) GetByUserID(userID string) (*models.Leader, error) {
	var l models.Leader
	if err := r.db.First(&l, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leaderRepository) GetByEmail(email string) (*models.Leader, error) {
	var l models.Leader
	if err := r.db.First(&l, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leaderRepository) GetByMobile(mobile string) (*models.Leader, error) {
	var l models.Leader
	if err := r.db.First(&l, "mobile_number = ?", mobile).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leaderRepository) GetByGroup(college, department, shift string) (*models.Leader, error) {
	var l models.Leader
	err := r.db.First(&l, "college = ? AND department = ? AND shift = ?", college, department, shift).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}
