package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/williamjames2004/sjcaisymposium/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRegistrationService struct {
	result *services.RegisterResult
	err    error
}

func (s *stubRegistrationService) RegisterTeam(leaderID, event string, participants []services.ParticipantInput) (*services.RegisterResult, error) {
	return s.result, s.err
}

type stubTeamService struct {
	participants *services.ParticipantsResult
	stats        *services.LeaderStats
	deleted      int64
	detached     int
	teams        []*services.TeamSummary
	err          error
}

func (s *stubTeamService) GetParticipants(leaderID string) (*services.ParticipantsResult, error) {
	return s.participants, s.err
}

func (s *stubTeamService) Stats(leaderID string) (*services.LeaderStats, error) {
	return s.stats, s.err
}

func (s *stubTeamService) DeleteParticipant(leaderID, registerNumber string) error {
	return s.err
}

func (s *stubTeamService) DeleteTeam(leaderID string) (int64, error) {
	return s.deleted, s.err
}

func (s *stubTeamService) DetachEvent(leaderID, event string) (int, error) {
	return s.detached, s.err
}

func (s *stubTeamService) ViewTeamsForEvent(event string) ([]*services.TeamSummary, error) {
	return s.teams, s.err
}

func doJSON(t *testing.T, handler gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST("/api/registerteam", handler)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, "/api/registerteam", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validTeamBody() gin.H {
	return gin.H{
		"leaderId": "LD1",
		"event":    "Fixathon",
		"participants": []gin.H{
			{"name": "Arun", "registerNumber": "22CS101", "mobile": "9876543210", "degree": "ug", "foodPreference": "vegetarian"},
		},
	}
}

func TestRegisterTeamSuccess(t *testing.T) {
	h := NewRegistrationHandler(&stubRegistrationService{result: &services.RegisterResult{Created: 1}}, &stubTeamService{})
	w := doJSON(t, h.RegisterTeam, validTeamBody())

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Created int    `json:"created"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Created != 1 {
		t.Errorf("response = %+v", resp)
	}
	if resp.Message != "Team of 1 registered for Fixathon." {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestRegisterTeamMissingFields(t *testing.T) {
	h := NewRegistrationHandler(&stubRegistrationService{}, &stubTeamService{})

	cases := []gin.H{
		{"event": "Fixathon", "participants": []gin.H{{"name": "Arun"}}},
		{"leaderId": "LD1", "participants": []gin.H{{"name": "Arun"}}},
		{"leaderId": "LD1", "event": "Fixathon", "participants": []gin.H{}},
	}
	for i, body := range cases {
		w := doJSON(t, h.RegisterTeam, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, w.Code)
		}
	}
}

func TestRegisterTeamErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{services.ErrValidation, http.StatusBadRequest},
		{services.ErrInvalidEvent, http.StatusBadRequest},
		{services.ErrDuplicateInBatch, http.StatusBadRequest},
		{services.ErrLeaderNotFound, http.StatusNotFound},
		{services.ErrEventAlreadyTaken, http.StatusConflict},
		{services.ErrCapacityExceeded, http.StatusConflict},
		{services.ErrBidMayhemExclusive, http.StatusConflict},
		{services.ErrTwoEventCap, http.StatusConflict},
		{services.ErrSlotConflict, http.StatusConflict},
		{services.ErrBatchWriteFailed, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		h := NewRegistrationHandler(&stubRegistrationService{err: tc.err}, &stubTeamService{})
		w := doJSON(t, h.RegisterTeam, validTeamBody())
		if w.Code != tc.want {
			t.Errorf("%v: status = %d, want %d", tc.err, w.Code, tc.want)
		}
		var resp struct {
			Success bool `json:"success"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Success {
			t.Errorf("%v: body = %s", tc.err, w.Body.String())
		}
	}
}

func TestStatsEndpoint(t *testing.T) {
	h := NewRegistrationHandler(&stubRegistrationService{}, &stubTeamService{
		stats: &services.LeaderStats{TotalStudents: 3, StudentsRemaining: 12, EventsRegistered: 1, RegisteredEvents: []string{"Fixathon"}},
	})
	router := gin.New()
	router.GET("/api/stats/:leaderId", h.Stats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats/LD1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Success bool                 `json:"success"`
		Stats   services.LeaderStats `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Stats.StudentsRemaining != 12 {
		t.Errorf("stats = %+v", resp.Stats)
	}
}

func TestGetCandidatesRequiresUserID(t *testing.T) {
	h := NewRegistrationHandler(&stubRegistrationService{}, &stubTeamService{
		participants: &services.ParticipantsResult{},
	})
	router := gin.New()
	router.POST("/api/getcandidates", h.GetCandidates)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/getcandidates", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/getcandidates", bytes.NewBufferString(`{"user_id":"LD1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
