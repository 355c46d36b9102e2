package handler

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/webstore/store-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenBody struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type loginResponse struct {
	AccessToken tokenBody `json:"accessToken"`
}

// --- Users ---

type createUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

type passwordRequest struct {
	Password string `json:"password" validate:"required,max=72"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required,max=50"`
}

type rolesResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}

// --- Products ---

type productRequest struct {
	Name  string          `json:"name"  validate:"required,max=200"`
	Price decimal.Decimal `json:"price"`
}

func (r productRequest) toDomain() domain.Product {
	return domain.Product{Name: r.Name, Price: r.Price}
}

// productResponse renders the price as a bare JSON number built from the
// decimal's string form, so no float conversion happens on the way out.
type productResponse struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price" swaggertype:"number"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{ID: p.ID, Name: p.Name, Price: json.Number(p.Price.String())}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

// --- Orders ---

type orderRequest struct {
	Username string `json:"username" validate:"required,max=50"`
}

type orderItemRequest struct {
	OrderID   int64 `json:"orderId"   validate:"required,gt=0,max=2147483647"`
	ProductID int64 `json:"productId" validate:"required,gt=0,max=2147483647"`
	Quantity  int64 `json:"quantity"  validate:"gte=0,max=2147483647"`
}

func (r orderItemRequest) toDomain() domain.OrderItem {
	return domain.OrderItem{OrderID: r.OrderID, ProductID: r.ProductID, Quantity: int(r.Quantity)}
}
