package ports

import (
	"context"

	"github.com/webstore/store-api/internal/core/domain"
)

// UserService covers account management and role grants.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, username, password string) (*domain.User, error)
	UpdatePassword(ctx context.Context, username, password string) (*domain.User, error)
	Delete(ctx context.Context, username string) (int64, error)

	Roles(ctx context.Context, username string) ([]string, error)
	AddRole(ctx context.Context, username, role string) ([]string, error)
	RemoveRole(ctx context.Context, username, role string) (int64, error)
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	Update(ctx context.Context, id int64, o domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type OrderItemService interface {
	List(ctx context.Context) ([]domain.OrderItem, error)
	Get(ctx context.Context, id int64) (*domain.OrderItem, error)
	Create(ctx context.Context, oi domain.OrderItem) (*domain.OrderItem, error)
	Update(ctx context.Context, id int64, oi domain.OrderItem) (*domain.OrderItem, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
