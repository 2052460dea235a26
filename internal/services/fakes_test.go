package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/williamjames2004/sjcaisymposium/internal/models"
)

// fakeParticipantRepo is an in-memory participant store. Reads hand out
// copies so that, like a real database, in-memory mutation of a fetched
// record does not change the store until Update is called. failCreateOn and
// failUpdateOn make the Nth call of that kind fail, for rollback tests.
type fakeParticipantRepo struct {
	records map[uuid.UUID]*models.Participant

	createCalls  int
	failCreateOn int
	updateCalls  int
	failUpdateOn int
}

var errInjected = errors.New("injected write failure")

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{records: make(map[uuid.UUID]*models.Participant)}
}

func clone(p *models.Participant) *models.Participant {
	cp := *p
	if p.Event2 != nil {
		e := *p.Event2
		cp.Event2 = &e
	}
	if p.Slot2 != nil {
		s := *p.Slot2
		cp.Slot2 = &s
	}
	return &cp
}

func (f *fakeParticipantRepo) Create(p *models.Participant) error {
	f.createCalls++
	if f.failCreateOn > 0 && f.createCalls == f.failCreateOn {
		return errInjected
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	// Mirror the store-level unique index.
	for _, r := range f.records {
		if r.LeaderID == p.LeaderID && r.RegisterNumber == p.RegisterNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	f.records[p.ID] = clone(p)
	return nil
}

func (f *fakeParticipantRepo) Update(p *models.Participant) error {
	f.updateCalls++
	if f.failUpdateOn > 0 && f.updateCalls == f.failUpdateOn {
		return errInjected
	}
	if _, ok := f.records[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.records[p.ID] = clone(p)
	return nil
}

func (f *fakeParticipantRepo) Delete(id uuid.UUID) error {
	delete(f.records, id)
	return nil
}

func (f *fakeParticipantRepo) DeleteByLeader(leaderID string) (int64, error) {
	var count int64
	for id, r := range f.records {
		if r.LeaderID == leaderID {
			delete(f.records, id)
			count++
		}
	}
	return count, nil
}

func (f *fakeParticipantRepo) GetByLeaderAndRegisterNumber(leaderID, registerNumber string) (*models.Participant, error) {
	for _, r := range f.records {
		if r.LeaderID == leaderID && r.RegisterNumber == registerNumber {
			return clone(r), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeParticipantRepo) ListByLeader(leaderID string) ([]*models.Participant, error) {
	var out []*models.Participant
	for _, r := range f.records {
		if r.LeaderID == leaderID {
			out = append(out, clone(r))
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) ListByLeaderAndRegisterNumbers(leaderID string, registerNumbers []string) ([]*models.Participant, error) {
	want := make(map[string]bool, len(registerNumbers))
	for _, reg := range registerNumbers {
		want[reg] = true
	}
	var out []*models.Participant
	for _, r := range f.records {
		if r.LeaderID == leaderID && want[r.RegisterNumber] {
			out = append(out, clone(r))
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) ListByEvent(event string) ([]*models.Participant, error) {
	var out []*models.Participant
	for _, r := range f.records {
		if r.HasEvent(event) {
			out = append(out, clone(r))
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) FindByLeaderAndEvent(leaderID, event string) ([]*models.Participant, error) {
	var out []*models.Participant
	for _, r := range f.records {
		if r.LeaderID == leaderID && r.HasEvent(event) {
			out = append(out, clone(r))
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) CountByLeader(leaderID string) (int64, error) {
	var count int64
	for _, r := range f.records {
		if r.LeaderID == leaderID {
			count++
		}
	}
	return count, nil
}

// find returns the stored record for a register number, for assertions.
func (f *fakeParticipantRepo) find(leaderID, registerNumber string) *models.Participant {
	for _, r := range f.records {
		if r.LeaderID == leaderID && r.RegisterNumber == registerNumber {
			return r
		}
	}
	return nil
}

type fakeLeaderRepo struct {
	leaders map[string]*models.Leader // by UserID
}

func newFakeLeaderRepo(leaders ...*models.Leader) *fakeLeaderRepo {
	f := &fakeLeaderRepo{leaders: make(map[string]*models.Leader)}
	for _, l := range leaders {
		f.leaders[l.UserID] = l
	}
	return f
}

func (f *fakeLeaderRepo) Create(leader *models.Leader) error {
	if leader.ID == uuid.Nil {
		leader.ID = uuid.New()
	}
	f.leaders[leader.UserID] = leader
	return nil
}

func (f *fakeLeaderRepo) GetByUserID(userID string) (*models.Leader, error) {
	if l, ok := f.leaders[userID]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaderRepo) GetByEmail(email string) (*models.Leader, error) {
	for _, l := range f.leaders {
		if l.Email == email {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaderRepo) GetByMobile(mobile string) (*models.Leader, error) {
	for _, l := range f.leaders {
		if l.MobileNumber == mobile {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaderRepo) GetByGroup(college, department, shift string) (*models.Leader, error) {
	for _, l := range f.leaders {
		if l.College == college && l.Department == department && l.Shift == shift {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeAdminRepo struct {
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminRepo) Create(admin *models.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	f.admins[admin.AdminID] = admin
	return nil
}

func (f *fakeAdminRepo) GetByAdminID(adminID string) (*models.Admin, error) {
	if a, ok := f.admins[adminID]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCollegeRepo struct {
	colleges []*models.College
	marked   []string
}

func (f *fakeCollegeRepo) CreateMany(colleges []*models.College) (int, error) {
	f.colleges = append(f.colleges, colleges...)
	return len(colleges), nil
}

func (f *fakeCollegeRepo) List() ([]*models.College, error) {
	return f.colleges, nil
}

func (f *fakeCollegeRepo) MarkRegistered(name string) error {
	f.marked = append(f.marked, name)
	return nil
}

// seedParticipant inserts a record directly into the fake store.
func seedParticipant(repo *fakeParticipantRepo, leaderID, name, reg, event string, slot models.Slot) *models.Participant {
	p := &models.Participant{
		ID:             uuid.New(),
		LeaderID:       leaderID,
		Name:           name,
		RegisterNumber: strings.ToUpper(reg),
		Mobile:         "9876543210",
		College:        "St Joseph's College",
		Department:     "ai",
		Degree:         "ug",
		FoodPreference: models.FoodVegetarian,
		Event1:         event,
		Slot1:          slot,
	}
	repo.records[p.ID] = p
	return p
}
