package catalog

import (
	"context"
	"errors"
	"testing"

	catalogquery "shopflow/internal/catalog"
	"shopflow/internal/domain"
)

type stubProductRepo struct {
	products  []domain.Product
	listErr   error
	listCalls int
	product   *domain.Product
	getErr    error
}

func (s *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	s.listCalls++
	return s.products, s.listErr
}

func (s *stubProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.getErr
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

type stubCategoryRepo struct {
	categories []domain.Category
	err        error
}

func (s *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

type stubCache struct {
	products []domain.Product
	hit      bool
	setCalls int
	lastSet  []domain.Product
}

func (s *stubCache) Get(_ context.Context) ([]domain.Product, bool) {
	return s.products, s.hit
}

func (s *stubCache) Set(_ context.Context, products []domain.Product) {
	s.setCalls++
	s.lastSet = products
}

func TestBrowseWithoutCache(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{
		{ID: "p1", Name: "Mouse", Category: "electronics", PriceCents: 5000},
		{ID: "p2", Name: "Shirt", Category: "clothing", PriceCents: 2000},
	}}
	svc := New(repo, &stubCategoryRepo{}, nil)

	res, err := svc.Browse(context.Background(), catalogquery.Query{Category: "electronics", Sort: catalogquery.SortPriceLow, Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 1 || res.TotalPages != 1 || res.Products[0].Name != "Mouse" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestBrowseRepoError(t *testing.T) {
	repo := &stubProductRepo{listErr: errors.New("boom")}
	svc := New(repo, &stubCategoryRepo{}, nil)
	if _, err := svc.Browse(context.Background(), catalogquery.Query{Page: 1}); err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestBrowseCacheHitSkipsRepo(t *testing.T) {
	repo := &stubProductRepo{listErr: errors.New("must not be called")}
	cache := &stubCache{hit: true, products: []domain.Product{{ID: "p1", Name: "Cached"}}}
	svc := New(repo, &stubCategoryRepo{}, cache)

	res, err := svc.Browse(context.Background(), catalogquery.Query{Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listCalls != 0 {
		t.Fatalf("repository consulted despite cache hit")
	}
	if res.Total != 1 || res.Products[0].Name != "Cached" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestBrowseCacheMissFillsCache(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{{ID: "p1", Name: "Fresh"}}}
	cache := &stubCache{hit: false}
	svc := New(repo, &stubCategoryRepo{}, cache)

	if _, err := svc.Browse(context.Background(), catalogquery.Query{Page: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.setCalls != 1 || len(cache.lastSet) != 1 {
		t.Fatalf("cache not filled on miss: calls=%d", cache.setCalls)
	}
}

func TestGetPassesThrough(t *testing.T) {
	repo := &stubProductRepo{getErr: domain.ErrNotFound}
	svc := New(repo, &stubCategoryRepo{}, nil)
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCategories(t *testing.T) {
	svc := New(&stubProductRepo{}, &stubCategoryRepo{categories: []domain.Category{{Key: "electronics", Name: "Electronics"}}}, nil)
	cats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) != 1 || cats[0].Key != "electronics" {
		t.Fatalf("unexpected categories %+v", cats)
	}
}
