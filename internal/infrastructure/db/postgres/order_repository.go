package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	orders := make([]domain.Order, 0)
	if err := sqlx.SelectContext(ctx, r.db, &orders,
		`SELECT id, username FROM orders ORDER BY id`); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var o domain.Order
	if err := sqlx.GetContext(ctx, r.db, &o,
		`SELECT id, username FROM orders WHERE id = $1`, id); err != nil {
		return nil, mapError(err, domain.ErrOrderNotFound)
	}
	return &o, nil
}

// Create fails with ErrConflict when the owning user does not exist.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var created domain.Order
	err := sqlx.GetContext(ctx, r.db, &created,
		`INSERT INTO orders (username)
		 VALUES ($1)
		 RETURNING id, username`,
		o.Username)
	if err != nil {
		return nil, mapError(err, domain.ErrOrderNotFound)
	}
	return &created, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var updated domain.Order
	err := sqlx.GetContext(ctx, r.db, &updated,
		`UPDATE orders SET username = $2
		 WHERE id = $1
		 RETURNING id, username`,
		o.ID, o.Username)
	if err != nil {
		return nil, mapError(err, domain.ErrOrderNotFound)
	}
	return &updated, nil
}

// Delete removes the order together with its items.
func (r *OrderRepository) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return 0, mapError(err, domain.ErrOrderNotFound)
	}
	return affected(res, domain.ErrOrderNotFound)
}

var _ ports.OrderRepository = (*OrderRepository)(nil)
