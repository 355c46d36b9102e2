package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	users := make([]domain.User, 0)
	if err := sqlx.SelectContext(ctx, r.db, &users,
		`SELECT username, password FROM users ORDER BY username`); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u domain.User
	err := sqlx.GetContext(ctx, r.db, &u,
		`SELECT username, password FROM users WHERE username = $1`, username)
	if err != nil {
		return nil, mapError(err, domain.ErrUserNotFound)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var created domain.User
	err := sqlx.GetContext(ctx, r.db, &created,
		`INSERT INTO users (username, password)
		 VALUES ($1, $2)
		 RETURNING username, password`,
		user.Username, user.PasswordHash)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, mapError(err, domain.ErrUserNotFound)
	}
	return &created, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var updated domain.User
	err := sqlx.GetContext(ctx, r.db, &updated,
		`UPDATE users SET password = $2
		 WHERE username = $1
		 RETURNING username, password`,
		username, passwordHash)
	if err != nil {
		return nil, mapError(err, domain.ErrUserNotFound)
	}
	return &updated, nil
}

// Delete removes the user; granted roles go with it through the cascade.
func (r *UserRepository) Delete(ctx context.Context, username string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return 0, mapError(err, domain.ErrUserNotFound)
	}
	return affected(res, domain.ErrUserNotFound)
}

func (r *UserRepository) ListRoles(ctx context.Context, username string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	roles := make([]string, 0)
	if err := sqlx.SelectContext(ctx, r.db, &roles,
		`SELECT role FROM roles WHERE username = $1 ORDER BY role`, username); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return roles, nil
}

func (r *UserRepository) AddRole(ctx context.Context, username, role string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (username, role)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		username, role)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return mapError(err, domain.ErrUserNotFound)
	}
	return nil
}

func (r *UserRepository) RemoveRole(ctx context.Context, username, role string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM roles WHERE username = $1 AND role = $2`, username, role)
	if err != nil {
		return 0, mapError(err, domain.ErrRoleNotFound)
	}
	return affected(res, domain.ErrRoleNotFound)
}

var _ ports.UserRepository = (*UserRepository)(nil)
