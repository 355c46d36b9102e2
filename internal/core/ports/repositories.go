package ports

import (
	"context"

	"github.com/webstore/store-api/internal/core/domain"
)

// ProductRepository persists products. Update and Delete report the
// entity-specific not-found error when no row matched.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type OrderItemRepository interface {
	List(ctx context.Context) ([]domain.OrderItem, error)
	GetByID(ctx context.Context, id int64) (*domain.OrderItem, error)
	Create(ctx context.Context, oi *domain.OrderItem) (*domain.OrderItem, error)
	Update(ctx context.Context, oi *domain.OrderItem) (*domain.OrderItem, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
