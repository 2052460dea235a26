package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/williamjames2004/sjcaisymposium/internal/models"
)

// ParticipantRepository is the participant record store. One record exists
// per (leader, register number); the unique index enforces that at the
// storage layer.
type ParticipantRepository interface {
	Create(p *models.Participant) error
	Update(p *models.Participant) error
	Delete(id uuid.UUID) error
	DeleteByLeader(leaderID string) (int64, error)

	GetByLeaderAndRegisterNumber(leaderID, registerNumber string) (*models.Participant, error)
	ListByLeader(leaderID string) ([]*models.Participant, error)
	ListByLeaderAndRegisterNumbers(leaderID string, registerNumbers []string) ([]*models.Participant, error)
	ListByEvent(event string) ([]*models.Participant, error)
	FindByLeaderAndEvent(leaderID, event string) ([]*models.Participant, error)
	CountByLeader(leaderID string) (int64, error)
}

type participantRepository struct{ db *gorm.DB }

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(p *models.Participant) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return r.db.Create(p).Error
}

func (r *participantRepository) Update(p *models.Participant) error {
	// Save with a map so nil event2/slot2 actually clear the columns.
	return r.db.Model(&models.Participant{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"event1": p.Event1,
		"slot1":  p.Slot1,
		"event2": p.Event2,
		"slot2":  p.Slot2,
	}).Error
}

func (r *participantRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Participant{}, "id = ?", id).Error
}

func (r *participantRepository) DeleteByLeader(leaderID string) (int64, error) {
	res := r.db.Where("leader_id = ?", leaderID).Delete(&models.Participant{})
	return res.RowsAffected, res.Error
}

func (r *participantRepository) GetByLeaderAndRegisterNumber(leaderID, registerNumber string) (*models.Participant, error) {
	var p models.Participant
	err := r.db.First(&p, "leader_id = ? AND register_number = ?", leaderID, registerNumber).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participantRepository) ListByLeader(leaderID string) ([]*models.Participant, error) {
	var ps []*models.Participant
	err := r.db.Where("leader_id = ?", leaderID).Order("created_at ASC").Find(&ps).Error
	return ps, err
}

func (r *participantRepository) ListByLeaderAndRegisterNumbers(leaderID string, registerNumbers []string) ([]*models.Participant, error) {
	var ps []*models.Participant
	err := r.db.Where("leader_id = ? AND register_number IN ?", leaderID, registerNumbers).Find(&ps).Error
	return ps, err
}

func (r *participantRepository) ListByEvent(event string) ([]*models.Participant, error) {
	var ps []*models.Participant
	err := r.db.Where("event1 = ? OR event2 = ?", event, event).Order("leader_id ASC").Find(&ps).Error
	return ps, err
}

func (r *participantRepository) FindByLeaderAndEvent(leaderID, event string) ([]*models.Participant, error) {
	var ps []*models.Participant
	err := r.db.Where("leader_id = ? AND (event1 = ? OR event2 = ?)", leaderID, event, event).Find(&ps).Error
	return ps, err
}

func (r *participantRepository) CountByLeader(leaderID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Participant{}).Where("leader_id = ?", leaderID).Count(&count).Error
	return count, err
}
