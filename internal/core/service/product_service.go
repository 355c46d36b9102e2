package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores p under a freshly assigned id; any id on the input is ignored.
func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ID = 0

	created, err := s.repo.Create(ctx, &p)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", created.ID).Str("price", created.Price.String()).Msg("product created")
	return created, nil
}

// Update replaces the mutable fields of product id.
func (s *ProductService) Update(ctx context.Context, id int64, p domain.Product) (*domain.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ID = id

	updated, err := s.repo.Update(ctx, &p)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return n, nil
}
