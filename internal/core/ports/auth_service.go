package ports

import (
	"context"
	"time"

	"github.com/webstore/store-api/internal/core/domain"
)

// AccessToken is the credential returned by a successful login.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenResolver turns a bearer token back into the caller's identity.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
}

type AuthService interface {
	TokenResolver
	Login(ctx context.Context, username, password string) (*AccessToken, error)
	Logout(ctx context.Context, token string) error
}
