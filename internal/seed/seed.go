package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	Key  string
	Name string
}

type productSeed struct {
	Key         string
	Name        string
	Description string
	PriceCents  int64
	Category    string
	Rating      float64
	InStock     bool
	ImageURL    string
}

// Apply inserts the ShopFlow demo catalog for manual testing. It is
// idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []categorySeed{
		{Key: "electronics", Name: "Electronics"},
		{Key: "clothing", Name: "Clothing"},
		{Key: "home", Name: "Home & Kitchen"},
		{Key: "sports", Name: "Sports & Outdoors"},
	}
	for _, c := range categories {
		if err := upsertCategory(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Key, err)
		}
	}

	products := []productSeed{
		{Key: "wireless-mouse", Name: "Wireless Mouse", Description: "Ergonomic optical mouse with silent clicks", PriceCents: 4999, Category: "electronics", Rating: 4.2, InStock: true, ImageURL: "https://images.shopflow.dev/wireless-mouse.jpg"},
		{Key: "bluetooth-speaker", Name: "Bluetooth Speaker", Description: "Portable speaker with deep bass and 12h battery", PriceCents: 7999, Category: "electronics", Rating: 4.7, InStock: true, ImageURL: "https://images.shopflow.dev/bt-speaker.jpg"},
		{Key: "smart-watch", Name: "Smart Watch", Description: "Fitness tracking watch with heart-rate monitor", PriceCents: 19999, Category: "electronics", Rating: 4.4, InStock: false, ImageURL: "https://images.shopflow.dev/smart-watch.jpg"},
		{Key: "usb-c-hub", Name: "USB-C Hub", Description: "7-in-1 hub with HDMI and card reader", PriceCents: 3499, Category: "electronics", Rating: 3.9, InStock: true, ImageURL: "https://images.shopflow.dev/usb-c-hub.jpg"},
		{Key: "cotton-shirt", Name: "Cotton Shirt", Description: "Soft casual tee in classic fit", PriceCents: 1999, Category: "clothing", Rating: 3.8, InStock: true, ImageURL: "https://images.shopflow.dev/cotton-shirt.jpg"},
		{Key: "denim-jacket", Name: "Denim Jacket", Description: "Mid-weight jacket with brass buttons", PriceCents: 8999, Category: "clothing", Rating: 4.1, InStock: true, ImageURL: "https://images.shopflow.dev/denim-jacket.jpg"},
		{Key: "wool-beanie", Name: "Wool Beanie", Description: "Warm ribbed knit beanie", PriceCents: 1499, Category: "clothing", Rating: 4.5, InStock: false, ImageURL: "https://images.shopflow.dev/wool-beanie.jpg"},
		{Key: "ceramic-mug", Name: "Ceramic Mug", Description: "12oz mug, dishwasher safe", PriceCents: 1299, Category: "home", Rating: 4.0, InStock: true, ImageURL: "https://images.shopflow.dev/ceramic-mug.jpg"},
		{Key: "cast-iron-pan", Name: "Cast Iron Pan", Description: "Pre-seasoned 10-inch skillet", PriceCents: 4599, Category: "home", Rating: 4.8, InStock: true, ImageURL: "https://images.shopflow.dev/cast-iron-pan.jpg"},
		{Key: "throw-blanket", Name: "Throw Blanket", Description: "Fleece blanket for the couch", PriceCents: 2999, Category: "home", Rating: 4.3, InStock: true, ImageURL: "https://images.shopflow.dev/throw-blanket.jpg"},
		{Key: "running-shoes", Name: "Running Shoes", Description: "Lightweight trainers with cushioned sole", PriceCents: 8999, Category: "sports", Rating: 4.0, InStock: true, ImageURL: "https://images.shopflow.dev/running-shoes.jpg"},
		{Key: "yoga-mat", Name: "Yoga Mat", Description: "Non-slip 6mm exercise mat", PriceCents: 2499, Category: "sports", Rating: 4.6, InStock: true, ImageURL: "https://images.shopflow.dev/yoga-mat.jpg"},
		{Key: "water-bottle", Name: "Insulated Water Bottle", Description: "Keeps drinks cold for 24 hours", PriceCents: 2199, Category: "sports", Rating: 4.4, InStock: false, ImageURL: "https://images.shopflow.dev/water-bottle.jpg"},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Key, err)
		}
	}

	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) error {
	const q = `
INSERT INTO categories (key, name)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET name = EXCLUDED.name
`
	_, err := pool.Exec(ctx, q, c.Key, c.Name)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (key, name, description, price_cents, currency, category, rating, in_stock, image_url)
VALUES ($1, $2, $3, $4, 'USD', $5, $6, $7, $8)
ON CONFLICT (key) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    category = EXCLUDED.category,
    rating = EXCLUDED.rating,
    in_stock = EXCLUDED.in_stock,
    image_url = EXCLUDED.image_url
`
	_, err := pool.Exec(ctx, q, p.Key, p.Name, p.Description, p.PriceCents, p.Category, p.Rating, p.InStock, p.ImageURL)
	return err
}
