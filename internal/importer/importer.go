package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shopflow/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type CategoryWriter interface {
	Upsert(ctx context.Context, c domain.Category) (*domain.Category, error)
}

// CSVImporter reads ShopFlow catalog exports and inserts/updates products.
// Categories referenced by the rows are upserted first so the product
// foreign keys resolve.
type CSVImporter struct {
	reader       *csv.Reader
	productRepo  ProductWriter
	categoryRepo CategoryWriter
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:       csvr,
		productRepo:  products,
		categoryRepo: categories,
	}
}

// Run parses CSV rows and upserts products, returning the number imported.
// Expected headers: key,name,description,price,currency,category,rating,in_stock,image.
// price is in decimal currency units (e.g. 49.99) and stored as cents.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"key", "name", "price", "category"} {
		if _, ok := index[required]; !ok {
			return 0, fmt.Errorf("missing required column %q", required)
		}
	}

	seenCategories := map[string]bool{}
	imported := 0

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+2, err)
		}
		if product == nil {
			continue
		}

		if !seenCategories[product.Category] {
			if _, err := i.categoryRepo.Upsert(ctx, domain.Category{
				Key:  product.Category,
				Name: titleCase(product.Category),
			}); err != nil {
				return imported, fmt.Errorf("upsert category %s: %w", product.Category, err)
			}
			seenCategories[product.Category] = true
		}

		if _, err := i.productRepo.Upsert(ctx, *product); err != nil {
			return imported, fmt.Errorf("upsert product %s: %w", product.Key, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	key := field("key")
	if key == "" {
		// Blank separator rows are skipped, not an error.
		return nil, nil
	}

	price, err := strconv.ParseFloat(field("price"), 64)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", field("price"), err)
	}
	if price < 0 {
		return nil, fmt.Errorf("negative price %q", field("price"))
	}

	rating := 0.0
	if raw := field("rating"); raw != "" {
		rating, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parse rating %q: %w", raw, err)
		}
		if rating < 0 || rating > 5 {
			return nil, fmt.Errorf("rating %v out of range", rating)
		}
	}

	currency := field("currency")
	if currency == "" {
		currency = "USD"
	}

	inStock := true
	if raw := field("in_stock"); raw != "" {
		inStock, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parse in_stock %q: %w", raw, err)
		}
	}

	return &domain.Product{
		Key:         key,
		Name:        field("name"),
		Description: field("description"),
		PriceCents:  int64(price*100 + 0.5),
		Currency:    currency,
		Category:    field("category"),
		Rating:      rating,
		InStock:     inStock,
		ImageURL:    field("image"),
	}, nil
}

func titleCase(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
