package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/williamjames2004/sjcaisymposium/internal/models"
	"github.com/williamjames2004/sjcaisymposium/internal/repository"
)

// ParticipantsResult is a leader's full team with the distinct events it is
// registered for.
type ParticipantsResult struct {
	TotalStudents    int                   `json:"totalStudents"`
	RegisteredEvents []string              `json:"registeredEvents"`
	Records          []*models.Participant `json:"data"`
}

// LeaderStats is the dashboard summary for one leader.
type LeaderStats struct {
	TotalStudents     int      `json:"totalStudents"`
	StudentsRemaining int      `json:"studentsRemaining"`
	EventsRegistered  int      `json:"eventsRegistered"`
	RegisteredEvents  []string `json:"registeredEvents"`
}

// TeamMember is one student inside a TeamSummary.
type TeamMember struct {
	Name           string  `json:"name"`
	RegisterNumber string  `json:"registerNumber"`
	Degree         string  `json:"degree"`
	Event1         string  `json:"event1"`
	Event2         *string `json:"event2"`
}

// TeamSummary groups one leader's members for an event view.
type TeamSummary struct {
	LeaderID   string       `json:"leaderId"`
	College    string       `json:"college"`
	Department string       `json:"department"`
	Members    []TeamMember `json:"members"`
}

// TeamService covers leader-scoped and event-scoped reads plus the corrective
// delete/detach paths used by admins.
type TeamService interface {
	GetParticipants(leaderID string) (*ParticipantsResult, error)
	Stats(leaderID string) (*LeaderStats, error)
	DeleteParticipant(leaderID, registerNumber string) error
	DeleteTeam(leaderID string) (int64, error)
	DetachEvent(leaderID, event string) (int, error)
	ViewTeamsForEvent(event string) ([]*TeamSummary, error)
}

type teamService struct {
	participants repository.ParticipantRepository
}

func NewTeamService(participants repository.ParticipantRepository) TeamService {
	return &teamService{participants: participants}
}

func (s *teamService) GetParticipants(leaderID string) (*ParticipantsResult, error) {
	records, err := s.participants.ListByLeader(leaderID)
	if err != nil {
		return nil, err
	}
	return &ParticipantsResult{
		TotalStudents:    len(records),
		RegisteredEvents: distinctEvents(records),
		Records:          records,
	}, nil
}

func (s *teamService) Stats(leaderID string) (*LeaderStats, error) {
	records, err := s.participants.ListByLeader(leaderID)
	if err != nil {
		return nil, err
	}
	events := distinctEvents(records)
	return &LeaderStats{
		TotalStudents:     len(records),
		StudentsRemaining: TeamCapacity - len(records),
		EventsRegistered:  len(events),
		RegisteredEvents:  events,
	}, nil
}

func (s *teamService) DeleteParticipant(leaderID, registerNumber string) error {
	reg := strings.ToUpper(registerNumber)
	record, err := s.participants.GetByLeaderAndRegisterNumber(leaderID, reg)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return s.participants.Delete(record.ID)
}

func (s *teamService) DeleteTeam(leaderID string) (int64, error) {
	count, err := s.participants.DeleteByLeader(leaderID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrNoTeamFound
	}
	return count, nil
}

// DetachEvent removes one event from every record of the leader's team that
// references it: event2 is cleared, event1 is replaced by a promoted event2,
// and records left with no events are deleted outright.
func (s *teamService) DetachEvent(leaderID, event string) (int, error) {
	records, err := s.participants.FindByLeaderAndEvent(leaderID, event)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, ErrNoRegistrationsForEvent
	}

	affected := 0
	for _, record := range records {
		switch record.DetachEvent(event) {
		case models.DetachCleared, models.DetachPromoted:
			if err := s.participants.Update(record); err != nil {
				return affected, err
			}
		case models.DetachDelete:
			if err := s.participants.Delete(record.ID); err != nil {
				return affected, err
			}
		case models.DetachNone:
			continue
		}
		affected++
	}
	return affected, nil
}

func (s *teamService) ViewTeamsForEvent(event string) ([]*TeamSummary, error) {
	records, err := s.participants.ListByEvent(event)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRegistrationsForEvent
	}

	byLeader := make(map[string]*TeamSummary)
	var order []string
	for _, rec := range records {
		team, ok := byLeader[rec.LeaderID]
		if !ok {
			team = &TeamSummary{
				LeaderID:   rec.LeaderID,
				College:    rec.College,
				Department: rec.Department,
			}
			byLeader[rec.LeaderID] = team
			order = append(order, rec.LeaderID)
		}
		team.Members = append(team.Members, TeamMember{
			Name:           rec.Name,
			RegisterNumber: rec.RegisterNumber,
			Degree:         rec.Degree,
			Event1:         rec.Event1,
			Event2:         rec.Event2,
		})
	}

	teams := make([]*TeamSummary, 0, len(order))
	for _, leaderID := range order {
		teams = append(teams, byLeader[leaderID])
	}
	return teams, nil
}

// distinctEvents collects the unique events across a team in first-seen order.
func distinctEvents(records []*models.Participant) []string {
	seen := make(map[string]bool)
	var events []string
	for _, rec := range records {
		for _, ev := range rec.Events() {
			if !seen[ev] {
				seen[ev] = true
				events = append(events, ev)
			}
		}
	}
	return events
}
