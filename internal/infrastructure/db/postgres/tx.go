package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/webstore/store-api/internal/core/ports"
)

// DBTX is the subset of sqlx used by the repositories.
// Both *sqlx.DB and *sqlx.Tx satisfy it.
type DBTX interface {
	sqlx.ExtContext
}

// WithTx begins a transaction, runs fn with it and commits on success.
// The transaction is rolled back when fn returns an error or panics; panics
// are rethrown.
func WithTx(ctx context.Context, db *sqlx.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTxx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

// UnitOfWork binds a user repository to a single transaction.
type UnitOfWork struct {
	db *sqlx.DB
}

func NewUnitOfWork(db *sqlx.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, users ports.UserRepository) error) error {
	return WithTx(ctx, u.db, nil, func(ctx context.Context, tx DBTX) error {
		return fn(ctx, NewUserRepository(tx))
	})
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)
