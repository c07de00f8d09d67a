package catalog

import (
	"context"

	"shopflow/internal/catalog"
	"shopflow/internal/domain"
	productrepo "shopflow/internal/repository/product"
)

// productCache is the optional read-through layer in front of the repository.
type productCache interface {
	Get(ctx context.Context) ([]domain.Product, bool)
	Set(ctx context.Context, products []domain.Product)
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type Service struct {
	repo       productrepo.Repository
	categories categoryRepo
	cache      productCache
}

// New builds the catalog service. cache may be nil, in which case every
// browse reads the repository directly.
func New(repo productrepo.Repository, categories categoryRepo, cache productCache) *Service {
	return &Service{repo: repo, categories: categories, cache: cache}
}

// Browse derives one storefront page from the current view-state. The
// filter/sort/paginate derivation itself is pure; only the product list
// fetch touches I/O.
func (s *Service) Browse(ctx context.Context, q catalog.Query) (catalog.Result, error) {
	products, err := s.products(ctx)
	if err != nil {
		return catalog.Result{}, err
	}
	return catalog.Apply(products, q), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) products(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.Get(ctx); ok {
			return products, nil
		}
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, products)
	}
	return products, nil
}
