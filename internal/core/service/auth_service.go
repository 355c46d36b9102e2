package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

// tokenClaims is the JWT payload. The subject carries the username.
type tokenClaims struct {
	Authorities []string `json:"authorities"`
	jwt.RegisteredClaims
}

// AuthService implements login, token resolution and logout.
type AuthService struct {
	users     ports.UserRepository
	revoker   ports.TokenRevoker
	jwtSecret []byte
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

// NewAuthService builds an AuthService. revoker may be nil, in which case
// logout succeeds without invalidating anything.
func NewAuthService(users ports.UserRepository, revoker ports.TokenRevoker, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		revoker:   revoker,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
}

// Login verifies the credentials and issues a signed token carrying the
// user's roles. Unknown users and wrong passwords are indistinguishable.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AccessToken, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	roles, err := s.users.ListRoles(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	return s.generateToken(user.Username, roles)
}

// Resolve validates token and returns the identity it was issued for.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	if s.revoker != nil && claims.ID != "" {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("username", claims.Subject).Msg("revocation check failed, accepting token")
		} else if revoked {
			return nil, domain.ErrUnauthenticated
		}
	}

	roles := make([]string, 0, len(claims.Authorities))
	for _, r := range claims.Authorities {
		roles = append(roles, domain.NormalizeRole(r))
	}
	return &domain.Identity{Username: claims.Subject, Roles: roles}, nil
}

// Logout revokes token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	if s.revoker == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return err
	}

	s.log.Info().Str("username", claims.Subject).Msg("token revoked")
	return nil
}

func (s *AuthService) parse(token string) (*tokenClaims, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return nil, domain.ErrUnauthenticated
	}
	return claims, nil
}

func (s *AuthService) generateToken(username string, roles []string) (*ports.AccessToken, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenTTL)

	authorities := make([]string, 0, len(roles))
	for _, r := range roles {
		authorities = append(authorities, domain.NormalizeRole(r))
	}

	claims := tokenClaims{
		Authorities: authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &ports.AccessToken{Token: signed, ExpiresAt: expiresAt.UTC()}, nil
}
