package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/webstore/store-api/internal/api/middleware"
	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, username, password string) (*ports.AccessToken, error)
	logoutFn func(ctx context.Context, token string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.AccessToken, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) Resolve(_ context.Context, token string) (*domain.Identity, error) {
	switch token {
	case "admin-token":
		return &domain.Identity{Username: "admin", Roles: []string{domain.RoleAdmin}}, nil
	case "user-token":
		return &domain.Identity{Username: "bob"}, nil
	}
	return nil, domain.ErrUnauthenticated
}

type stubUserService struct {
	users map[string]*domain.User
	roles map[string][]string
	// lastPassword records the password passed to Create/UpdatePassword.
	lastPassword string
}

func newStubUserService() *stubUserService {
	return &stubUserService{
		users: map[string]*domain.User{"bob": {Username: "bob", PasswordHash: "$2a$hash"}},
		roles: map[string][]string{"bob": {"USER"}},
	}
}

func (s *stubUserService) List(context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubUserService) Get(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserService) Create(_ context.Context, username, password string) (*domain.User, error) {
	if _, ok := s.users[username]; ok {
		return nil, domain.ErrUserExists
	}
	s.lastPassword = password
	u := &domain.User{Username: username, PasswordHash: "$2a$" + password}
	s.users[username] = u
	return u, nil
}

func (s *stubUserService) UpdatePassword(_ context.Context, username, password string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	s.lastPassword = password
	u.PasswordHash = "$2a$" + password
	return u, nil
}

func (s *stubUserService) Delete(_ context.Context, username string) (int64, error) {
	if _, ok := s.users[username]; !ok {
		return 0, domain.ErrUserNotFound
	}
	delete(s.users, username)
	return 1, nil
}

func (s *stubUserService) Roles(_ context.Context, username string) ([]string, error) {
	if _, ok := s.users[username]; !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.roles[username], nil
}

func (s *stubUserService) AddRole(_ context.Context, username, role string) ([]string, error) {
	if _, ok := s.users[username]; !ok {
		return nil, domain.ErrUserNotFound
	}
	s.roles[username] = append(s.roles[username], domain.NormalizeRole(role))
	return s.roles[username], nil
}

func (s *stubUserService) RemoveRole(_ context.Context, username, role string) (int64, error) {
	role = domain.NormalizeRole(role)
	for i, r := range s.roles[username] {
		if r == role {
			s.roles[username] = append(s.roles[username][:i], s.roles[username][i+1:]...)
			return 1, nil
		}
	}
	return 0, domain.ErrRoleNotFound
}

type stubProductService struct {
	products map[int64]domain.Product
	next     int64
	// lastUpdateID records the id passed to Update.
	lastUpdateID int64
}

func newStubProductService() *stubProductService {
	return &stubProductService{products: map[int64]domain.Product{}, next: 1}
}

func (s *stubProductService) List(context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(s.products))
	for id := int64(1); id < s.next; id++ {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductService) Get(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (s *stubProductService) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ID = s.next
	s.next++
	s.products[p.ID] = p
	return &p, nil
}

func (s *stubProductService) Update(_ context.Context, id int64, p domain.Product) (*domain.Product, error) {
	s.lastUpdateID = id
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.products[id]; !ok {
		return nil, domain.ErrProductNotFound
	}
	p.ID = id
	s.products[id] = p
	return &p, nil
}

func (s *stubProductService) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := s.products[id]; !ok {
		return 0, domain.ErrProductNotFound
	}
	delete(s.products, id)
	return 1, nil
}

type stubOrderService struct {
	orders map[int64]domain.Order
}

func (s *stubOrderService) List(context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *stubOrderService) Get(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &o, nil
}

func (s *stubOrderService) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	o.ID = int64(len(s.orders) + 1)
	s.orders[o.ID] = o
	return &o, nil
}

func (s *stubOrderService) Update(_ context.Context, id int64, o domain.Order) (*domain.Order, error) {
	if _, ok := s.orders[id]; !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.ID = id
	s.orders[id] = o
	return &o, nil
}

func (s *stubOrderService) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := s.orders[id]; !ok {
		return 0, domain.ErrOrderNotFound
	}
	delete(s.orders, id)
	return 1, nil
}

type stubOrderItemService struct {
	created []domain.OrderItem
}

func (s *stubOrderItemService) List(context.Context) ([]domain.OrderItem, error) {
	return s.created, nil
}

func (s *stubOrderItemService) Get(_ context.Context, id int64) (*domain.OrderItem, error) {
	for _, oi := range s.created {
		if oi.ID == id {
			return &oi, nil
		}
	}
	return nil, domain.ErrOrderItemNotFound
}

func (s *stubOrderItemService) Create(_ context.Context, oi domain.OrderItem) (*domain.OrderItem, error) {
	oi.ID = int64(len(s.created) + 1)
	s.created = append(s.created, oi)
	return &oi, nil
}

func (s *stubOrderItemService) Update(_ context.Context, id int64, oi domain.OrderItem) (*domain.OrderItem, error) {
	for i := range s.created {
		if s.created[i].ID == id {
			oi.ID = id
			s.created[i] = oi
			return &oi, nil
		}
	}
	return nil, domain.ErrOrderItemNotFound
}

func (s *stubOrderItemService) Delete(_ context.Context, id int64) (int64, error) {
	for i := range s.created {
		if s.created[i].ID == id {
			s.created = append(s.created[:i], s.created[i+1:]...)
			return 1, nil
		}
	}
	return 0, domain.ErrOrderItemNotFound
}

// newContext builds an echo context with the validator registered. Path
// params are given as name/value pairs.
func newContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

// authenticate runs h behind the route guard so the identity for token is
// stored on the context the way the router does it.
func authenticate(c echo.Context, token string, h echo.HandlerFunc) error {
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	return middleware.Guard(&stubAuthService{}, domain.Authenticated())(h)(c)
}

var (
	_ ports.AuthService      = (*stubAuthService)(nil)
	_ ports.UserService      = (*stubUserService)(nil)
	_ ports.ProductService   = (*stubProductService)(nil)
	_ ports.OrderService     = (*stubOrderService)(nil)
	_ ports.OrderItemService = (*stubOrderItemService)(nil)
)
