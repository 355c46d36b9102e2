package domain

import (
	"fmt"
	"strings"
)

// Order belongs to exactly one user.
type Order struct {
	ID       int64  `json:"id"       db:"id"`
	Username string `json:"username" db:"username"`
}

func (o Order) Validate() error {
	if strings.TrimSpace(o.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	return nil
}

// OrderItem is a product line within an order.
type OrderItem struct {
	ID        int64 `json:"id"        db:"id"`
	OrderID   int64 `json:"orderId"   db:"order_id"`
	ProductID int64 `json:"productId" db:"product_id"`
	Quantity  int   `json:"quantity"  db:"quantity"`
}

func (oi OrderItem) Validate() error {
	switch {
	case oi.OrderID <= 0:
		return fmt.Errorf("%w: orderId must be positive", ErrValidation)
	case oi.ProductID <= 0:
		return fmt.Errorf("%w: productId must be positive", ErrValidation)
	case oi.Quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	return nil
}
