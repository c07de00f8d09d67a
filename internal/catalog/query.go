package catalog

import (
	"net/url"
	"strconv"
)

// SortKey enumerates the orderings the storefront can request.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// Query is the view-state of a catalog page: everything needed to derive
// the visible product list. It is rebuilt from the query string on every
// request and never stored.
type Query struct {
	Category string
	Search   string
	Sort     SortKey
	Page     int
}

// ParseQuery decodes a Query from URL query parameters. Missing or malformed
// parameters fall back to defaults; parsing never fails.
func ParseQuery(values url.Values) Query {
	q := Query{
		Category: values.Get("category"),
		Search:   values.Get("search"),
		Sort:     normalizeSort(values.Get("sortBy")),
		Page:     1,
	}
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		q.Page = p
	}
	return q
}

// Values encodes the Query back into URL query parameters. Defaults are
// omitted so encode∘decode round-trips and URLs stay minimal.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Sort != "" && q.Sort != SortName {
		values.Set("sortBy", string(q.Sort))
	}
	if q.Page > 1 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	return values
}

func normalizeSort(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return SortKey(raw)
	default:
		// Unrecognized or absent keys sort by name.
		return SortName
	}
}
