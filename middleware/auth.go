package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"funfans-backend/access"
	"funfans-backend/models"
	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
)

func extractJwtClaims(c *gin.Context) (utils.TokenClaims, bool) {
	authHeader := c.GetHeader("Authorization")

	// Browsers cannot set headers on a websocket handshake.
	if authHeader == "" {
		authHeader = c.Query("token")
	}

	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
		return utils.TokenClaims{}, false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format, expected: Bearer <token>"})
		return utils.TokenClaims{}, false
	}

	tokenString := strings.Trim(parts[1], "\"' ")

	claims, err := utils.DecodeJWT(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
		return utils.TokenClaims{}, false
	}

	return claims, true
}

// JWTAuth authenticates the request and stores user_id, role and jti on the
// context. Tokens revoked by a logout are refused. The role is read from the
// account so a role change applies without a new login.
func JWTAuth(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		revoked, err := s.IsTokenRevoked(c.Request.Context(), claims.JTI)
		if err != nil {
			utils.LogErrorWithUser(claims.UserID, err, "Error checking token revocation")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error checking the token"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		user, err := s.GetUser(c.Request.Context(), claims.UserID)
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
			return
		}
		if err != nil {
			utils.LogErrorWithUser(claims.UserID, err, "Error loading the authenticated user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error checking the token"})
			return
		}

		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))
		c.Set("jti", claims.JTI)
		c.Set("token_expires_at", claims.ExpiresAt)
		c.Next()
	}
}

// AdminAuth must run after JWTAuth.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			return
		}

		if role != string(models.RoleDeveloper) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: developer role required"})
			return
		}

		c.Next()
	}
}

// TimeoutGuard answers 423 while the authenticated user is timed out.
func TimeoutGuard(s store.Store) gin.HandlerFunc {
	return TimeoutGuardAt(s, time.Now)
}

func TimeoutGuardAt(s store.Store, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		timeout, err := s.GetTimeout(c.Request.Context(), userID)
		if errors.Is(err, store.ErrNotFound) {
			c.Next()
			return
		}
		if err != nil {
			utils.LogErrorWithUser(userID, err, "Error loading user timeout")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error checking the account status"})
			return
		}

		if timeout.Active(now()) {
			c.AbortWithStatusJSON(http.StatusLocked, gin.H{
				"error":   "Your account is temporarily restricted",
				"message": timeout.Message,
				"endTime": timeout.EndTime,
			})
			return
		}
		c.Next()
	}
}

// RequireCapability refuses the request unless the caller's role and the
// current sidebar flags grant capability.
func RequireCapability(s store.Store, capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := s.GetSettings(c.Request.Context())
		if err != nil {
			utils.LogError(err, "Error loading platform settings")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error loading platform settings"})
			return
		}

		role := models.Role(c.GetString("role"))
		if !access.ResolveVisibility(role, settings.Sidebar).Has(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This feature is not available: " + string(capability)})
			return
		}
		c.Next()
	}
}
