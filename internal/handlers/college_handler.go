package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/williamjames2004/sjcaisymposium/internal/services"
)

type CollegeHandler struct{ svc services.CollegeService }

func NewCollegeHandler(svc services.CollegeService) *CollegeHandler {
	return &CollegeHandler{svc: svc}
}

// AddColleges handles POST /api/addcollege — bulk insert, duplicates skipped.
func (h *CollegeHandler) AddColleges(c *gin.Context) {
	var inputs []services.CollegeInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Send array of colleges"})
		return
	}
	count, err := h.svc.AddColleges(inputs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Colleges added successfully",
		"count":   count,
	})
}

// ListColleges handles GET /api/getcollege
func (h *CollegeHandler) ListColleges(c *gin.Context) {
	colleges, err := h.svc.ListColleges()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, colleges)
}
