package middleware

import (
	"net/http"
	"strings"

	"pilates-club/pkg/jwt"
	"pilates-club/pkg/session"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserName  = "user_name"
	ContextUserRole  = "user_role"
	ContextTokenID   = "token_id"
	ContextTokenExp  = "token_expires_at"
	ContextIsAdmin   = "is_admin"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return SessionMiddleware(jwtService, nil)
}

// SessionMiddleware validates the bearer token and rejects tokens revoked
// through logout. A nil store skips the revocation check.
func SessionMiddleware(jwtService *jwt.Service, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		revoked, err := store.IsRevoked(c.Request.Context(), claims.ID)
		if err == nil && revoked {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has been logged out"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserName, claims.Name)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ContextTokenExp, claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// IsAdmin reports whether a session with role and email has admin rights.
func IsAdmin(role, email string, adminEmails []string) bool {
	if role == "admin" {
		return true
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, admin := range adminEmails {
		if strings.ToLower(admin) == email {
			return true
		}
	}
	return false
}

// AdminOnly must run after SessionMiddleware.
func AdminOnly(adminEmails []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c.GetString(ContextUserRole), c.GetString(ContextUserEmail), adminEmails) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Set(ContextIsAdmin, true)
		c.Next()
	}
}
