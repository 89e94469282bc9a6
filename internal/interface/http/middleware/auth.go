package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bookshop-api/bookshop/internal/domain/user"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
	"github.com/bookshop-api/bookshop/pkg/jwt"
	"github.com/bookshop-api/bookshop/pkg/response"
)

// Context keys set by the auth middleware.
const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxRole   = "role"
	ctxToken  = "access_token"
)

// TokenBlacklist answers whether an access token was invalidated by a
// logout. Satisfied by redis.SessionStore.
type TokenBlacklist interface {
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware verifies the bearer token and injects the user identity
// into the request context.
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  TokenBlacklist
}

// NewAuthMiddleware creates the middleware.
func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager, blacklist: blacklist}
}

// RequireAuth rejects requests without a valid, non-blacklisted bearer
// token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		blacklisted, err := m.blacklist.IsBlacklisted(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if blacklisted {
			response.Error(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.Parse(token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxToken, token)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// GetUserID returns the authenticated user's ID, zero when anonymous.
func GetUserID(c *gin.Context) uint {
	if v, exists := c.Get(ctxUserID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// MustGetUserID is GetUserID for handlers behind RequireAuth, where a
// missing identity is a programming error.
func MustGetUserID(c *gin.Context) uint {
	id := GetUserID(c)
	if id == 0 {
		panic("user_id not found in context")
	}
	return id
}

// GetToken returns the bearer token this request authenticated with.
func GetToken(c *gin.Context) string {
	if v, exists := c.Get(ctxToken); exists {
		if t, ok := v.(string); ok {
			return t
		}
	}
	return ""
}

// IsAdmin reports whether the authenticated user carries the admin role.
func IsAdmin(c *gin.Context) bool {
	if v, exists := c.Get(ctxRole); exists {
		if role, ok := v.(string); ok {
			return role == user.RoleAdmin
		}
	}
	return false
}
