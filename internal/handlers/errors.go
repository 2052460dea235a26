package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/williamjames2004/sjcaisymposium/internal/services"
)

// statusForError maps service sentinel errors onto HTTP status codes.
// Constraint conflicts are 409 so the client can distinguish "fix your input"
// from "this clashes with existing registrations".
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidEvent),
		errors.Is(err, services.ErrDuplicateInBatch),
		errors.Is(err, services.ErrIncompleteProfile),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrMobileTaken),
		errors.Is(err, services.ErrGroupTaken),
		errors.Is(err, services.ErrAdminExists):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrLeaderNotFound),
		errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrNoTeamFound),
		errors.Is(err, services.ErrNoRegistrationsForEvent):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEventAlreadyTaken),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrBidMayhemExclusive),
		errors.Is(err, services.ErrTwoEventCap),
		errors.Is(err, services.ErrSlotConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"success": false, "message": err.Error()})
}
