package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	o.Username = strings.TrimSpace(o.Username)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	o.ID = 0

	created, err := s.repo.Create(ctx, &o)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("order_id", created.ID).Str("username", created.Username).Msg("order created")
	return created, nil
}

func (s *OrderService) Update(ctx context.Context, id int64, o domain.Order) (*domain.Order, error) {
	o.Username = strings.TrimSpace(o.Username)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	o.ID = id

	updated, err := s.repo.Update(ctx, &o)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("order_id", id).Str("username", updated.Username).Msg("order updated")
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int64("order_id", id).Msg("order deleted")
	return n, nil
}

type OrderItemService struct {
	repo   ports.OrderItemRepository
	logger zerolog.Logger
}

func NewOrderItemService(repo ports.OrderItemRepository, logger zerolog.Logger) *OrderItemService {
	return &OrderItemService{repo: repo, logger: logger}
}

func (s *OrderItemService) List(ctx context.Context) ([]domain.OrderItem, error) {
	return s.repo.List(ctx)
}

func (s *OrderItemService) Get(ctx context.Context, id int64) (*domain.OrderItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrderItemService) Create(ctx context.Context, oi domain.OrderItem) (*domain.OrderItem, error) {
	if err := oi.Validate(); err != nil {
		return nil, err
	}
	oi.ID = 0

	created, err := s.repo.Create(ctx, &oi)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("order_item_id", created.ID).
		Int64("order_id", created.OrderID).
		Int64("product_id", created.ProductID).
		Msg("order item created")
	return created, nil
}

func (s *OrderItemService) Update(ctx context.Context, id int64, oi domain.OrderItem) (*domain.OrderItem, error) {
	if err := oi.Validate(); err != nil {
		return nil, err
	}
	oi.ID = id

	updated, err := s.repo.Update(ctx, &oi)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("order_item_id", id).Msg("order item updated")
	return updated, nil
}

func (s *OrderItemService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int64("order_item_id", id).Msg("order item deleted")
	return n, nil
}
