package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/williamjames2004/sjcaisymposium/internal/services"
)

// RegistrationHandler exposes the batch team registration and the leader's
// dashboard reads.
type RegistrationHandler struct {
	registrations services.RegistrationService
	teams         services.TeamService
}

func NewRegistrationHandler(registrations services.RegistrationService, teams services.TeamService) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations, teams: teams}
}

type registerTeamReq struct {
	LeaderID     string                      `json:"leaderId"`
	Event        string                      `json:"event"`
	Participants []services.ParticipantInput `json:"participants"`
}

// RegisterTeam handles POST /api/registerteam. The whole team is validated
// and written atomically; any failure leaves the store untouched.
func (h *RegistrationHandler) RegisterTeam(c *gin.Context) {
	var req registerTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if req.LeaderID == "" || req.Event == "" || len(req.Participants) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "leaderId, event, and a non-empty participants array are required",
		})
		return
	}

	result, err := h.registrations.RegisterTeam(req.LeaderID, req.Event, req.Participants)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Team of %d registered for %s.", len(req.Participants), req.Event),
		"created": result.Created,
		"updated": result.Updated,
	})
}

type candidatesReq struct {
	UserID string `json:"user_id"`
}

// GetCandidates handles POST /api/getcandidates
func (h *RegistrationHandler) GetCandidates(c *gin.Context) {
	var req candidatesReq
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User ID required"})
		return
	}
	result, err := h.teams.GetParticipants(req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"totalStudents":    result.TotalStudents,
		"registeredEvents": result.RegisteredEvents,
		"data":             result.Records,
	})
}

// Stats handles GET /api/stats/:leaderId
func (h *RegistrationHandler) Stats(c *gin.Context) {
	stats, err := h.teams.Stats(c.Param("leaderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
