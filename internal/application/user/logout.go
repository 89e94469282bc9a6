package user

import (
	"context"
	"time"

	"github.com/bookshop-api/bookshop/internal/infrastructure/persistence/redis"
	"github.com/bookshop-api/bookshop/pkg/jwt"
)

// LogoutUseCase drops the session and blacklists the presented access token
// for the rest of its lifetime, so a stolen token stops working immediately.
type LogoutUseCase struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewLogoutUseCase creates the logout use case.
func NewLogoutUseCase(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{jwtManager: jwtManager, sessionStore: sessionStore}
}

// Execute logs the user out. The token was already verified by the auth
// middleware, so a parse failure here only means there is nothing left to
// blacklist.
func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, accessToken string) error {
	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		return err
	}

	claims, err := uc.jwtManager.Parse(accessToken)
	if err != nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return uc.sessionStore.BlacklistToken(ctx, accessToken, ttl)
}
