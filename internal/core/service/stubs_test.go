package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   map[string]*domain.User
	roles   map[string]map[string]struct{}
	listErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users: make(map[string]*domain.User),
		roles: make(map[string]map[string]struct{}),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.users[user.Username] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, username, hash string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, username string) (int64, error) {
	if _, ok := r.users[username]; !ok {
		return 0, domain.ErrUserNotFound
	}
	delete(r.users, username)
	delete(r.roles, username)
	return 1, nil
}

func (r *stubUserRepo) ListRoles(_ context.Context, username string) ([]string, error) {
	out := make([]string, 0, len(r.roles[username]))
	for role := range r.roles[username] {
		out = append(out, role)
	}
	sort.Strings(out)
	return out, nil
}

func (r *stubUserRepo) AddRole(_ context.Context, username, role string) error {
	if r.roles[username] == nil {
		r.roles[username] = make(map[string]struct{})
	}
	r.roles[username][role] = struct{}{}
	return nil
}

func (r *stubUserRepo) RemoveRole(_ context.Context, username, role string) (int64, error) {
	if _, ok := r.roles[username][role]; !ok {
		return 0, domain.ErrRoleNotFound
	}
	delete(r.roles[username], role)
	return 1, nil
}

// stubUnitOfWork runs fn directly against the wrapped repo and records
// whether the callback failed (i.e. would have rolled back).
type stubUnitOfWork struct {
	repo       *stubUserRepo
	calls      int
	rolledBack bool
}

func (u *stubUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, users ports.UserRepository) error) error {
	u.calls++
	err := fn(ctx, u.repo)
	u.rolledBack = err != nil
	return err
}

type stubRevoker struct {
	revoked  map[string]time.Duration
	checkErr error
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (r *stubRevoker) Revoke(_ context.Context, id string, ttl time.Duration) error {
	r.revoked[id] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	if r.checkErr != nil {
		return false, r.checkErr
	}
	_, ok := r.revoked[id]
	return ok, nil
}

// stubTable is a generic id-keyed table backing the product, order and
// order-item stubs. Ids come from a sequence and are never reused.
type stubTable[T any] struct {
	rows     map[int64]T
	next     int64
	notFound error
	failWith error
}

func newStubTable[T any](notFound error) *stubTable[T] {
	return &stubTable[T]{rows: make(map[int64]T), next: 1, notFound: notFound}
}

func (t *stubTable[T]) list() ([]T, error) {
	if t.failWith != nil {
		return nil, t.failWith
	}
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out, nil
}

func (t *stubTable[T]) get(id int64) (*T, error) {
	row, ok := t.rows[id]
	if !ok {
		return nil, t.notFound
	}
	return &row, nil
}

func (t *stubTable[T]) insert(assign func(int64) T) (*T, error) {
	if t.failWith != nil {
		return nil, t.failWith
	}
	id := t.next
	t.next++
	row := assign(id)
	t.rows[id] = row
	return &row, nil
}

func (t *stubTable[T]) replace(id int64, row T) (*T, error) {
	if _, ok := t.rows[id]; !ok {
		return nil, t.notFound
	}
	t.rows[id] = row
	return &row, nil
}

func (t *stubTable[T]) remove(id int64) (int64, error) {
	if _, ok := t.rows[id]; !ok {
		return 0, t.notFound
	}
	delete(t.rows, id)
	return 1, nil
}

type stubProductRepo struct{ *stubTable[domain.Product] }

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{newStubTable[domain.Product](domain.ErrProductNotFound)}
}

func (r *stubProductRepo) List(context.Context) ([]domain.Product, error) { return r.list() }

func (r *stubProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	return r.get(id)
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	return r.insert(func(id int64) domain.Product { c := *p; c.ID = id; return c })
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	return r.replace(p.ID, *p)
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) (int64, error) { return r.remove(id) }

type stubOrderRepo struct{ *stubTable[domain.Order] }

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{newStubTable[domain.Order](domain.ErrOrderNotFound)}
}

func (r *stubOrderRepo) List(context.Context) ([]domain.Order, error) { return r.list() }

func (r *stubOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	return r.get(id)
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	return r.insert(func(id int64) domain.Order { c := *o; c.ID = id; return c })
}

func (r *stubOrderRepo) Update(_ context.Context, o *domain.Order) (*domain.Order, error) {
	return r.replace(o.ID, *o)
}

func (r *stubOrderRepo) Delete(_ context.Context, id int64) (int64, error) { return r.remove(id) }

type stubOrderItemRepo struct{ *stubTable[domain.OrderItem] }

func newStubOrderItemRepo() *stubOrderItemRepo {
	return &stubOrderItemRepo{newStubTable[domain.OrderItem](domain.ErrOrderItemNotFound)}
}

func (r *stubOrderItemRepo) List(context.Context) ([]domain.OrderItem, error) { return r.list() }

func (r *stubOrderItemRepo) GetByID(_ context.Context, id int64) (*domain.OrderItem, error) {
	return r.get(id)
}

func (r *stubOrderItemRepo) Create(_ context.Context, oi *domain.OrderItem) (*domain.OrderItem, error) {
	return r.insert(func(id int64) domain.OrderItem { c := *oi; c.ID = id; return c })
}

func (r *stubOrderItemRepo) Update(_ context.Context, oi *domain.OrderItem) (*domain.OrderItem, error) {
	return r.replace(oi.ID, *oi)
}

func (r *stubOrderItemRepo) Delete(_ context.Context, id int64) (int64, error) { return r.remove(id) }

var errStoreDown = errors.New("store down")

var (
	_ ports.UserRepository      = (*stubUserRepo)(nil)
	_ ports.ProductRepository   = (*stubProductRepo)(nil)
	_ ports.OrderRepository     = (*stubOrderRepo)(nil)
	_ ports.OrderItemRepository = (*stubOrderItemRepo)(nil)
	_ ports.TokenRevoker        = (*stubRevoker)(nil)
	_ ports.UnitOfWork          = (*stubUnitOfWork)(nil)
)
