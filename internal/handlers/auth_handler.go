package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/williamjames2004/sjcaisymposium/internal/services"
)

type AuthHandler struct{ svc *services.AuthService }

func NewAuthHandler(svc *services.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// RegisterLeader handles POST /api/regleader
func (h *AuthHandler) RegisterLeader(c *gin.Context) {
	var input services.LeaderSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	userID, err := h.svc.RegisterLeader(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Leader registered successfully",
		"userid":  userID,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginLeader handles POST /api/loginleader
func (h *AuthHandler) LoginLeader(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	result, err := h.svc.LoginLeader(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"userid":  result.UserID,
		"token":   result.Token,
	})
}

type adminRegReq struct {
	AdminID  string `json:"adminId"`
	Name     string `json:"name"`
	Role     int    `json:"role"`
	Password string `json:"password"`
}

// RegisterAdmin handles POST /api/adminreg
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req adminRegReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if err := h.svc.RegisterAdmin(req.AdminID, req.Name, req.Role, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Admin registered successfully"})
}

type adminLoginReq struct {
	AdminID  string `json:"adminId"`
	Password string `json:"password"`
}

// LoginAdmin handles POST /api/adminlogin
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req adminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	result, err := h.svc.LoginAdmin(req.AdminID, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	message := "Moderator logged in"
	if result.Role == 1 {
		message = "Super Admin logged in"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"role":    result.Role,
		"token":   result.Token,
		"message": message,
	})
}
