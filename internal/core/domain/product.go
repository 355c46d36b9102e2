package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Prices are stored as NUMERIC(10,2).
const priceScale = 2

var maxPrice = decimal.New(1, 8)

// Product is a sellable item. Price is kept as an exact decimal end to end.
type Product struct {
	ID    int64           `json:"id"    db:"id"`
	Name  string          `json:"name"  db:"name"`
	Price decimal.Decimal `json:"price" db:"price"`
}

// Validate checks the mutable fields of a product.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if !p.Price.Equal(p.Price.Round(priceScale)) {
		return fmt.Errorf("%w: price must have at most %d decimal places", ErrValidation, priceScale)
	}
	if p.Price.GreaterThanOrEqual(maxPrice) {
		return fmt.Errorf("%w: price must be below %s", ErrValidation, maxPrice)
	}
	return nil
}
