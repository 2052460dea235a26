package models

import (
	"time"

	"github.com/google/uuid"
)

// FoodPreference is fixed at first registration and never changes afterwards.
type FoodPreference string

const (
	FoodVegetarian    FoodPreference = "vegetarian"
	FoodNonVegetarian FoodPreference = "non-vegetarian"
)

// RegistrationState describes how many events a participant currently holds.
type RegistrationState string

const (
	StateSingleEvent RegistrationState = "single"
	StateDualEvent   RegistrationState = "dual"
)

// Participant represents one student's registration under one leader.
// There is exactly one record per (leader, register number); a second event is
// a field update on the same record, never a new record.
type Participant struct {
	ID             uuid.UUID      `json:"id" gorm:"type:text;primaryKey"`
	LeaderID       string         `json:"leaderId" gorm:"uniqueIndex:idx_leader_regno;not null"`
	Name           string         `json:"name" gorm:"not null"`
	RegisterNumber string         `json:"registerNumber" gorm:"uniqueIndex:idx_leader_regno;not null"`
	Mobile         string         `json:"mobile" gorm:"not null"`
	College        string         `json:"college" gorm:"not null"`
	Department     string         `json:"department" gorm:"not null"` // cs|it|ai|ds|ca
	Degree         string         `json:"degree" gorm:"not null"`     // ug|pg
	FoodPreference FoodPreference `json:"foodPreference" gorm:"not null"`

	// First event, always present while the record exists.
	Event1 string `json:"event1" gorm:"index:idx_leader_event1;not null"`
	Slot1  Slot   `json:"slot1" gorm:"not null"`

	// Second event, nil until the student is added to another event.
	Event2 *string `json:"event2" gorm:"index:idx_leader_event2"`
	Slot2  *Slot   `json:"slot2"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// State returns the participant's registration state.
func (p *Participant) State() RegistrationState {
	if p.Event2 != nil {
		return StateDualEvent
	}
	return StateSingleEvent
}

// HasEvent reports whether the participant is registered for the given event.
func (p *Participant) HasEvent(event string) bool {
	if p.Event1 == event {
		return true
	}
	return p.Event2 != nil && *p.Event2 == event
}

// Events returns the participant's events in slot order.
func (p *Participant) Events() []string {
	events := []string{p.Event1}
	if p.Event2 != nil {
		events = append(events, *p.Event2)
	}
	return events
}

// InBidMayhem reports whether either event occupies both slots, which locks
// the student out of every other event.
func (p *Participant) InBidMayhem() bool {
	if p.Slot1 == SlotBoth {
		return true
	}
	return p.Slot2 != nil && *p.Slot2 == SlotBoth
}

// AddSecondEvent transitions the record from single to dual. The caller is
// expected to have validated slot conflicts already; this only guards the
// structural invariant that a record never holds more than two events.
func (p *Participant) AddSecondEvent(event string, slot Slot) bool {
	if p.Event2 != nil {
		return false
	}
	p.Event2 = &event
	p.Slot2 = &slot
	return true
}

// DetachOutcome tells the caller what a DetachEvent transition did to the
// record and whether it must now be persisted or deleted.
type DetachOutcome int

const (
	DetachNone     DetachOutcome = iota // record does not reference the event
	DetachCleared                       // event2 removed, record stays
	DetachPromoted                      // event2 moved into event1, record stays
	DetachDelete                        // no events left, record must be deleted
)

// DetachEvent removes one event from the record. When the removed event was
// event1 and a second event exists, the second event is promoted so that
// event1 is never empty on a live record.
func (p *Participant) DetachEvent(event string) DetachOutcome {
	if p.Event2 != nil && *p.Event2 == event {
		p.Event2 = nil
		p.Slot2 = nil
		return DetachCleared
	}
	if p.Event1 == event {
		if p.Event2 != nil {
			p.Event1 = *p.Event2
			p.Slot1 = *p.Slot2
			p.Event2 = nil
			p.Slot2 = nil
			return DetachPromoted
		}
		return DetachDelete
	}
	return DetachNone
}
