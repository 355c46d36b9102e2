package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

type OrderItemRepository struct {
	db DBTX
}

func NewOrderItemRepository(db DBTX) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

func (r *OrderItemRepository) List(ctx context.Context) ([]domain.OrderItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	items := make([]domain.OrderItem, 0)
	if err := sqlx.SelectContext(ctx, r.db, &items,
		`SELECT id, order_id, product_id, quantity FROM order_items ORDER BY id`); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}

func (r *OrderItemRepository) GetByID(ctx context.Context, id int64) (*domain.OrderItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var oi domain.OrderItem
	if err := sqlx.GetContext(ctx, r.db, &oi,
		`SELECT id, order_id, product_id, quantity FROM order_items WHERE id = $1`, id); err != nil {
		return nil, mapError(err, domain.ErrOrderItemNotFound)
	}
	return &oi, nil
}

// Create fails with ErrConflict when the referenced order or product is missing.
func (r *OrderItemRepository) Create(ctx context.Context, oi *domain.OrderItem) (*domain.OrderItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var created domain.OrderItem
	err := sqlx.GetContext(ctx, r.db, &created,
		`INSERT INTO order_items (order_id, product_id, quantity)
		 VALUES ($1, $2, $3)
		 RETURNING id, order_id, product_id, quantity`,
		oi.OrderID, oi.ProductID, oi.Quantity)
	if err != nil {
		return nil, mapError(err, domain.ErrOrderItemNotFound)
	}
	return &created, nil
}

func (r *OrderItemRepository) Update(ctx context.Context, oi *domain.OrderItem) (*domain.OrderItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var updated domain.OrderItem
	err := sqlx.GetContext(ctx, r.db, &updated,
		`UPDATE order_items SET order_id = $2, product_id = $3, quantity = $4
		 WHERE id = $1
		 RETURNING id, order_id, product_id, quantity`,
		oi.ID, oi.OrderID, oi.ProductID, oi.Quantity)
	if err != nil {
		return nil, mapError(err, domain.ErrOrderItemNotFound)
	}
	return &updated, nil
}

func (r *OrderItemRepository) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return 0, mapError(err, domain.ErrOrderItemNotFound)
	}
	return affected(res, domain.ErrOrderItemNotFound)
}

var _ ports.OrderItemRepository = (*OrderItemRepository)(nil)
