package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "vox-market.backend/internal/domain/errors"
	"vox-market.backend/internal/interfaces/http/response"
	"vox-market.backend/pkg/jwt"
	"vox-market.backend/pkg/redis"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionIDHeader carries a server-side session id instead of a token
	SessionIDHeader = "X-Session-ID"
	// TokenCookie is the cookie set at login
	TokenCookie = "token"
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
)

// SessionReader looks up server-side sessions
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
}

// ResolveToken extracts the session token from the Authorization header,
// the login cookie or a server-side session id, in that order
func ResolveToken(c *gin.Context, store SessionReader) string {
	if authHeader := c.GetHeader(AuthorizationHeader); strings.HasPrefix(authHeader, BearerPrefix) {
		return strings.TrimPrefix(authHeader, BearerPrefix)
	}

	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}

	if sessionID := c.GetHeader(SessionIDHeader); sessionID != "" && store != nil {
		session, err := store.GetSession(c.Request.Context(), sessionID)
		if err == nil && session != nil {
			return session.Token
		}
	}

	return ""
}

// AuthMiddleware rejects requests without a valid session token and puts
// the token claims into the gin context
func AuthMiddleware(session *jwt.SessionService, store SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ResolveToken(c, store)
		if tokenString == "" {
			response.Error(c, domainerrors.Unauthorized("authentication required"))
			c.Abort()
			return
		}

		claims, err := session.Validate(tokenString)
		if err != nil {
			if err == jwt.ErrExpiredToken {
				response.Error(c, domainerrors.Unauthorized("token has expired"))
			} else {
				response.Error(c, domainerrors.Unauthorized("invalid token"))
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, claims.Role)

		c.Next()
	}
}

// RequireRole refuses authenticated requests whose role claim differs
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, ok := GetUserRole(c)
		if !ok || userRole != role {
			response.Error(c, domainerrors.Forbidden("insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetUserEmail gets the user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetUserRole gets the user role from context
func GetUserRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}
