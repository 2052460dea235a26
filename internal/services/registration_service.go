package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/williamjames2004/sjcaisymposium/internal/models"
	"github.com/williamjames2004/sjcaisymposium/internal/repository"
)

// TeamCapacity is the department-level cap on distinct students per leader.
const TeamCapacity = 15

// ParticipantInput is one member of a team registration request.
// FoodPreference is only consulted for students with no existing record; for
// existing students whatever was sent is ignored.
type ParticipantInput struct {
	Name           string `json:"name"`
	RegisterNumber string `json:"registerNumber"`
	Mobile         string `json:"mobile"`
	Degree         string `json:"degree"` // ug|pg
	FoodPreference string `json:"foodPreference,omitempty"`
}

// RegisterResult reports what a successful team registration wrote.
type RegisterResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// RegistrationService validates and applies batch team registrations.
// Validation is fully read-only; nothing is written until every rule has
// passed, and a mid-batch write failure rolls back the whole batch.
type RegistrationService interface {
	RegisterTeam(leaderID, event string, participants []ParticipantInput) (*RegisterResult, error)
}

type registrationService struct {
	participants repository.ParticipantRepository
	leaders      repository.LeaderRepository
}

func NewRegistrationService(participants repository.ParticipantRepository, leaders repository.LeaderRepository) RegistrationService {
	return &registrationService{participants: participants, leaders: leaders}
}

// writeAction is one step of a validated write plan. Exactly one of create
// and update is set.
type writeAction struct {
	create *models.Participant
	update *updateAction
}

// updateAction adds a second event to an existing record, keeping the prior
// event2/slot2 so the write can be compensated on rollback.
type updateAction struct {
	record     *models.Participant
	event      string
	slot       models.Slot
	prevEvent2 *string
	prevSlot2  *models.Slot
}

func (s *registrationService) RegisterTeam(leaderID, event string, participants []ParticipantInput) (*RegisterResult, error) {
	plan, err := s.buildPlan(leaderID, event, participants)
	if err != nil {
		return nil, err
	}
	return s.applyPlan(plan)
}

// buildPlan runs every constraint check against current store state and, only
// if all pass, emits the ordered write plan. No writes happen here.
func (s *registrationService) buildPlan(leaderID, event string, participants []ParticipantInput) ([]writeAction, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: a non-empty participants list is required", ErrValidation)
	}

	leader, err := s.leaders.GetByUserID(leaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaderNotFound
		}
		return nil, err
	}
	if leader.College == "" || leader.Department == "" {
		return nil, ErrIncompleteProfile
	}

	slot, ok := models.SlotForEvent(event)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEvent, event)
	}

	// One team per event per leader.
	taken, err := s.participants.FindByLeaderAndEvent(leaderID, event)
	if err != nil {
		return nil, err
	}
	if len(taken) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrEventAlreadyTaken, event)
	}

	// Uppercase register numbers and reject duplicates within the batch.
	regNumbers := make([]string, len(participants))
	seen := make(map[string]bool, len(participants))
	var dups []string
	for i, p := range participants {
		reg := strings.ToUpper(p.RegisterNumber)
		regNumbers[i] = reg
		if seen[reg] {
			dups = append(dups, reg)
		}
		seen[reg] = true
	}
	if len(dups) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateInBatch, strings.Join(dups, ", "))
	}

	// Which of these students already have a record under this leader?
	existingDocs, err := s.participants.ListByLeaderAndRegisterNumbers(leaderID, regNumbers)
	if err != nil {
		return nil, err
	}
	existingByReg := make(map[string]*models.Participant, len(existingDocs))
	for _, doc := range existingDocs {
		existingByReg[doc.RegisterNumber] = doc
	}

	// Per-participant field validation.
	for i, p := range participants {
		if p.Name == "" || p.RegisterNumber == "" || p.Mobile == "" || p.Degree == "" {
			return nil, fmt.Errorf("%w: name, registerNumber, mobile and degree are all required", ErrValidation)
		}
		if !validMobile(p.Mobile) {
			return nil, fmt.Errorf("%w: invalid mobile number for %s, must be 10 digits starting with 6-9", ErrValidation, p.Name)
		}
		if p.Degree != "ug" && p.Degree != "pg" {
			return nil, fmt.Errorf("%w: invalid degree for %s, must be ug or pg", ErrValidation, p.Name)
		}
		if _, exists := existingByReg[regNumbers[i]]; !exists {
			// Food preference is required and validated for new students only.
			if p.FoodPreference == "" {
				return nil, fmt.Errorf("%w: food preference is required for new participant %s", ErrValidation, p.Name)
			}
			if p.FoodPreference != string(models.FoodVegetarian) && p.FoodPreference != string(models.FoodNonVegetarian) {
				return nil, fmt.Errorf("%w: invalid food preference for %s, must be vegetarian or non-vegetarian", ErrValidation, p.Name)
			}
		}
	}

	// Capacity cap counts distinct students, not event assignments.
	current, err := s.participants.CountByLeader(leaderID)
	if err != nil {
		return nil, err
	}
	newCount := 0
	for _, reg := range regNumbers {
		if existingByReg[reg] == nil {
			newCount++
		}
	}
	if current+int64(newCount) > TeamCapacity {
		return nil, fmt.Errorf("%w: current %d, new in this team %d", ErrCapacityExceeded, current, newCount)
	}

	// Per-student conflict checks against each existing record.
	for _, doc := range existingDocs {
		if doc.InBidMayhem() {
			return nil, fmt.Errorf("%w: %s (%s) is in %s", ErrBidMayhemExclusive, doc.Name, doc.RegisterNumber, models.EventBidMayhem)
		}
		if slot == models.SlotBoth {
			return nil, fmt.Errorf("%w: %s (%s) already has events", ErrBidMayhemExclusive, doc.Name, doc.RegisterNumber)
		}
		if doc.Event2 != nil {
			return nil, fmt.Errorf("%w: %s (%s) is in %s & %s", ErrTwoEventCap, doc.Name, doc.RegisterNumber, doc.Event1, *doc.Event2)
		}
		if doc.Slot1 == slot {
			return nil, fmt.Errorf("%w: %s (%s) already has %s in the same time slot", ErrSlotConflict, doc.Name, doc.RegisterNumber, doc.Event1)
		}
	}

	// All checks passed; emit the plan in submission order.
	plan := make([]writeAction, 0, len(participants))
	for i, p := range participants {
		if existing := existingByReg[regNumbers[i]]; existing != nil {
			plan = append(plan, writeAction{update: &updateAction{
				record:     existing,
				event:      event,
				slot:       slot,
				prevEvent2: existing.Event2,
				prevSlot2:  existing.Slot2,
			}})
			continue
		}
		plan = append(plan, writeAction{create: &models.Participant{
			LeaderID:       leaderID,
			Name:           p.Name,
			RegisterNumber: regNumbers[i],
			Mobile:         cleanMobile(p.Mobile),
			College:        leader.College,
			Department:     leader.Department,
			Degree:         p.Degree,
			FoodPreference: models.FoodPreference(p.FoodPreference),
			Event1:         event,
			Slot1:          slot,
		}})
	}
	return plan, nil
}

// applyPlan executes the plan sequentially. A write failure anywhere triggers
// best-effort compensation: created records are deleted and updated records
// restored to their captured prior values, then ErrBatchWriteFailed is
// returned so the caller can retry the whole request.
func (s *registrationService) applyPlan(plan []writeAction) (*RegisterResult, error) {
	var created []*models.Participant
	var updated []*updateAction

	for _, action := range plan {
		var err error
		if action.create != nil {
			if err = s.participants.Create(action.create); err == nil {
				created = append(created, action.create)
			}
		} else {
			up := action.update
			up.record.AddSecondEvent(up.event, up.slot)
			if err = s.participants.Update(up.record); err == nil {
				updated = append(updated, up)
			}
		}
		if err != nil {
			s.rollback(created, updated)
			return nil, fmt.Errorf("%w: %v", ErrBatchWriteFailed, err)
		}
	}

	return &RegisterResult{Created: len(created), Updated: len(updated)}, nil
}

func (s *registrationService) rollback(created []*models.Participant, updated []*updateAction) {
	for _, p := range created {
		if err := s.participants.Delete(p.ID); err != nil {
			log.Printf("[rollback] failed to delete created record %s: %v", p.ID, err)
		}
	}
	for _, up := range updated {
		up.record.Event2 = up.prevEvent2
		up.record.Slot2 = up.prevSlot2
		if err := s.participants.Update(up.record); err != nil {
			log.Printf("[rollback] failed to restore record %s: %v", up.record.ID, err)
		}
	}
}
