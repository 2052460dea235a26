package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/williamjames2004/sjcaisymposium/internal/services"
)

// TeamHandler exposes the admin corrective actions and event-scoped views.
type TeamHandler struct{ svc services.TeamService }

func NewTeamHandler(svc services.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

type deleteMemberReq struct {
	UserID         string `json:"userid"`
	RegisterNumber string `json:"registerNumber"`
}

// DeleteMember handles POST /api/deleteteammember
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	var req deleteMemberReq
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.RegisterNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}
	if err := h.svc.DeleteParticipant(req.UserID, req.RegisterNumber); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student deleted successfully"})
}

// DeleteTeam handles DELETE /api/deleteteam/:leaderId — removes every record
// for the leader.
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	count, err := h.svc.DeleteTeam(c.Param("leaderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      fmt.Sprintf("Team deleted. %d participant(s) removed.", count),
		"deletedCount": count,
	})
}

// DetachEvent handles DELETE /api/deleteteam/:leaderId/:event — removes one
// event from the leader's team, promoting or deleting records as needed.
func (h *TeamHandler) DetachEvent(c *gin.Context) {
	event := c.Param("event")
	affected, err := h.svc.DetachEvent(c.Param("leaderId"), event)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      fmt.Sprintf("Team removed from %s. %d participant(s) affected.", event, affected),
		"deletedCount": affected,
	})
}

type viewEventReq struct {
	EventName string `json:"eventName"`
}

// ViewEventRegistrations handles POST /api/vieweventregs — all teams for an
// event, grouped by leader.
func (h *TeamHandler) ViewEventRegistrations(c *gin.Context) {
	var req viewEventReq
	if err := c.ShouldBindJSON(&req); err != nil || req.EventName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Event name required"})
		return
	}
	teams, err := h.svc.ViewTeamsForEvent(req.EventName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": teams})
}
