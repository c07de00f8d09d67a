package catalog

import (
	"sort"
	"strings"

	"shopflow/internal/domain"
)

// PageSize is the fixed number of products per storefront page.
const PageSize = 12

// Result is one page of the derived catalog view.
type Result struct {
	Products   []domain.Product `json:"products"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
	Page       int              `json:"page"`
}

// Apply derives the page of products described by q. The stages run in a
// fixed order — category filter, search filter, sort, paginate — because
// each stage narrows the set the next one operates on. Apply is pure: it
// never mutates the input slice and has no other inputs or outputs.
func Apply(products []domain.Product, q Query) Result {
	filtered := filterCategory(products, q.Category)
	filtered = filterSearch(filtered, q.Search)
	sortProducts(filtered, q.Sort)

	page := q.Page
	if page < 1 {
		page = 1
	}

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	// A page past the end is an empty result, not an error and not a clamp.
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Products:   filtered[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
	}
}

func filterCategory(products []domain.Product, category string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	if category == "" {
		return append(out, products...)
	}
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func filterSearch(products []domain.Product, search string) []domain.Product {
	if search == "" {
		return products
	}
	needle := strings.ToLower(search)
	out := products[:0]
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) || strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

func sortProducts(products []domain.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].PriceCents < products[j].PriceCents })
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].PriceCents > products[j].PriceCents })
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case SortNewest:
		// Identity sort. The repository lists products newest-first, so the
		// incoming order already is the "newest" order.
	default:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	}
}
