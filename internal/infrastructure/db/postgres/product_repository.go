package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	products := make([]domain.Product, 0)
	if err := sqlx.SelectContext(ctx, r.db, &products,
		`SELECT id, name, price FROM products ORDER BY id`); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p domain.Product
	if err := sqlx.GetContext(ctx, r.db, &p,
		`SELECT id, name, price FROM products WHERE id = $1`, id); err != nil {
		return nil, mapError(err, domain.ErrProductNotFound)
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var created domain.Product
	err := sqlx.GetContext(ctx, r.db, &created,
		`INSERT INTO products (name, price)
		 VALUES ($1, $2)
		 RETURNING id, name, price`,
		p.Name, p.Price)
	if err != nil {
		return nil, mapError(err, domain.ErrProductNotFound)
	}
	return &created, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var updated domain.Product
	err := sqlx.GetContext(ctx, r.db, &updated,
		`UPDATE products SET name = $2, price = $3
		 WHERE id = $1
		 RETURNING id, name, price`,
		p.ID, p.Name, p.Price)
	if err != nil {
		return nil, mapError(err, domain.ErrProductNotFound)
	}
	return &updated, nil
}

// Delete fails with ErrConflict while order items still reference the product.
func (r *ProductRepository) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, mapError(err, domain.ErrProductNotFound)
	}
	return affected(res, domain.ErrProductNotFound)
}

var _ ports.ProductRepository = (*ProductRepository)(nil)
