package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	uow    ports.UnitOfWork
	logger zerolog.Logger
}

// NewUserService wires the user service. uow is only needed by EnsureAdmin
// and may be nil otherwise.
func NewUserService(repo ports.UserRepository, uow ports.UnitOfWork, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, uow: uow, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Create hashes password and stores a new user without any roles.
func (s *UserService) Create(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{Username: username, PasswordHash: hash})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user created")
	return created, nil
}

func (s *UserService) UpdatePassword(ctx context.Context, username, password string) (*domain.User, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdatePassword(ctx, username, hash)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("password updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, username string) (int64, error) {
	n, err := s.repo.Delete(ctx, username)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Str("username", username).Msg("user deleted")
	return n, nil
}

// Roles lists the roles of an existing user.
func (s *UserService) Roles(ctx context.Context, username string) ([]string, error) {
	if _, err := s.repo.GetByUsername(ctx, username); err != nil {
		return nil, err
	}
	return s.repo.ListRoles(ctx, username)
}

// AddRole grants role (upper-cased) to username and returns the resulting set.
func (s *UserService) AddRole(ctx context.Context, username, role string) ([]string, error) {
	role = domain.NormalizeRole(role)
	if role == "" {
		return nil, fmt.Errorf("%w: role is required", domain.ErrValidation)
	}

	if _, err := s.repo.GetByUsername(ctx, username); err != nil {
		return nil, err
	}
	if err := s.repo.AddRole(ctx, username, role); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", role).Msg("role granted")
	return s.repo.ListRoles(ctx, username)
}

func (s *UserService) RemoveRole(ctx context.Context, username, role string) (int64, error) {
	role = domain.NormalizeRole(role)
	n, err := s.repo.RemoveRole(ctx, username, role)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Str("username", username).Str("role", role).Msg("role revoked")
	return n, nil
}

// EnsureAdmin makes sure username exists and holds the ADMIN role. An
// existing user keeps its current password.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	if s.uow == nil {
		return errors.New("ensure admin: no unit of work configured")
	}
	if username == "" || password == "" {
		return fmt.Errorf("%w: admin username and password are required", domain.ErrValidation)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, users ports.UserRepository) error {
		_, err := users.GetByUsername(ctx, username)
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			hash, err := hashPassword(password)
			if err != nil {
				return err
			}
			if _, err := users.Create(ctx, &domain.User{Username: username, PasswordHash: hash}); err != nil {
				return fmt.Errorf("ensure admin: %w", err)
			}
			s.logger.Info().Str("username", username).Msg("bootstrap admin created")
		case err != nil:
			return fmt.Errorf("ensure admin: %w", err)
		}
		return users.AddRole(ctx, username, domain.RoleAdmin)
	})
}

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

func hashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
