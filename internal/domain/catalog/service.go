package catalog

import (
	"context"

	"github.com/rs/zerolog"
)

// Service describes the business logic surface for catalog operations.
type Service interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int) (Product, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the catalog service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "catalog-service").Logger(),
	}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list products")
		return nil, err
	}
	return products, nil
}

func (s *service) Get(ctx context.Context, id int) (Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	return product, nil
}
