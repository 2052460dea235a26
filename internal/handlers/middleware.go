package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/williamjames2004/sjcaisymposium/internal/services"
)

// AuthMiddleware protects leader routes. It expects a Bearer token issued at
// leader login and stores the verified claims in the gin context.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, authService)
		if !ok {
			return
		}
		if claims.Role != "user" {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
			c.Abort()
			return
		}
		c.Set("userid", claims.UserID)
		c.Next()
	}
}

// AdminMiddleware protects admin routes.
func AdminMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, authService)
		if !ok {
			return
		}
		if claims.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied. Admin only."})
			c.Abort()
			return
		}
		c.Set("adminId", claims.UserID)
		c.Set("adminRole", claims.AdminRole)
		c.Next()
	}
}

// SuperAdminMiddleware restricts a route to role-1 admins. Must run after
// AdminMiddleware.
func SuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, ok := c.Get("adminRole"); !ok || role != 1 {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied. Super Admin only."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows the symposium frontend to call the API from another
// origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, authService *services.AuthService) (*services.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Access denied. No token provided."})
		c.Abort()
		return nil, false
	}
	claims, err := authService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid token."})
		c.Abort()
		return nil, false
	}
	return claims, true
}
