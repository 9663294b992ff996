package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo catalog data: a handful of products with content
// records in various workflow states, one campaign over them and one
// bundle. Intended for local development only.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now().UTC()
	creator := uuid.New()
	approver := uuid.New()

	productIDs := make([]uuid.UUID, 0, 5)
	states := []string{"draft", "review", "approved", "published", "archived"}
	for i, state := range states {
		productID := uuid.New()
		productIDs = append(productIDs, productID)

		images, _ := json.Marshal([]string{
			fmt.Sprintf("https://cdn.example.com/products/%d/main.jpg", i+1),
		})
		keywords, _ := json.Marshal([]string{"demo", fmt.Sprintf("product-%d", i+1)})

		var approvedBy *uuid.UUID
		var publishedAt *time.Time
		switch state {
		case "approved":
			approvedBy = &approver
		case "published", "archived":
			approvedBy = &approver
			publishedAt = &now
		}

		_, err := db.Exec(ctx, `INSERT INTO catalog_content
    (id, product_id, title, description, image_urls, keywords, state,
     created_by, approved_by, published_at, version, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,1,now(),now()) ON CONFLICT DO NOTHING`,
			uuid.New(), productID, fmt.Sprintf("Demo product %d", i+1),
			"Seeded content record.", images, keywords, state,
			creator, approvedBy, publishedAt)
		if err != nil {
			return err
		}
	}

	targets, _ := json.Marshal(productIDs)
	rules, _ := json.Marshal([]map[string]string{
		{"attribute": "category", "operator": "eq", "value": "demo"},
	})
	metrics, _ := json.Marshal(map[string]int64{
		"impressions": 0, "conversions": 0, "revenue_cents": 0,
	})
	_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, type, status, start_date, end_date, discount_type,
     discount_value, product_ids, rules, metrics, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now(),now()) ON CONFLICT DO NOTHING`,
		uuid.New(), "Spring sale", "seasonal", "scheduled",
		now.AddDate(0, 0, 1), now.AddDate(0, 1, 0),
		"percentage", "15", targets, rules, metrics)
	if err != nil {
		return err
	}

	items, _ := json.Marshal([]map[string]any{
		{"product_id": productIDs[0], "unit_price_cents": 1999, "quantity": 1},
		{"product_id": productIDs[1], "unit_price_cents": 2999, "quantity": 2},
	})
	_, err = db.Exec(ctx, `INSERT INTO bundles
    (id, name, description, items, pricing_strategy, bundle_price_cents,
     savings_cents, availability, valid_from, valid_until, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now()) ON CONFLICT DO NOTHING`,
		uuid.New(), "Starter kit", "Seeded bundle.", items,
		"fixed_price", 6499, 1498, "active",
		now, now.AddDate(0, 3, 0))
	return err
}
