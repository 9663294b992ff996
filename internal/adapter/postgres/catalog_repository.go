package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"mesa-catalog/internal/core/domain"
	"mesa-catalog/internal/core/port"
)

// CatalogRepository implements port.CatalogRepository using pgxpool for
// PostgreSQL. List-valued fields (image URLs, keywords, bundle items,
// campaign rules) are stored as jsonb.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a new repository instance.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// CreateContent stores a new content record.
func (r *CatalogRepository) CreateContent(ctx context.Context, c *domain.Content) error {
	images, err := json.Marshal(c.ImageURLs)
	if err != nil {
		return fmt.Errorf("marshal image urls: %w", err)
	}
	keywords, err := json.Marshal(c.Keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO catalog_content
    (id, product_id, title, description, image_urls, keywords, state,
     created_by, approved_by, published_at, version, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.ID, c.ProductID, c.Title, c.Description, images, keywords,
		string(c.State), c.CreatedBy, c.ApprovedBy, c.PublishedAt,
		c.Version, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetContent returns a content record by id.
func (r *CatalogRepository) GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	var (
		c        domain.Content
		state    string
		images   []byte
		keywords []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT
    id, product_id, title, description, image_urls, keywords, state,
    created_by, approved_by, published_at, version, created_at, updated_at
FROM catalog_content WHERE id = $1`, id).Scan(
		&c.ID, &c.ProductID, &c.Title, &c.Description, &images, &keywords,
		&state, &c.CreatedBy, &c.ApprovedBy, &c.PublishedAt,
		&c.Version, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(images, &c.ImageURLs); err != nil {
		return nil, fmt.Errorf("unmarshal image urls: %w", err)
	}
	if err = json.Unmarshal(keywords, &c.Keywords); err != nil {
		return nil, fmt.Errorf("unmarshal keywords: %w", err)
	}
	c.State = domain.WorkflowState(state)
	return &c, nil
}

// UpdateContent persists an updated content record. The write applies
// only when the stored version is exactly one behind the incoming one,
// so concurrent writers cannot silently overwrite each other.
func (r *CatalogRepository) UpdateContent(ctx context.Context, c *domain.Content) error {
	images, err := json.Marshal(c.ImageURLs)
	if err != nil {
		return fmt.Errorf("marshal image urls: %w", err)
	}
	keywords, err := json.Marshal(c.Keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}
	ct, err := r.pool.Exec(ctx, `UPDATE catalog_content SET
    title = $1, description = $2, image_urls = $3, keywords = $4,
    state = $5, approved_by = $6, published_at = $7, version = $8,
    updated_at = $9
WHERE id = $10 AND version = $11`,
		c.Title, c.Description, images, keywords, string(c.State),
		c.ApprovedBy, c.PublishedAt, c.Version, c.UpdatedAt,
		c.ID, c.Version-1)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		var exists bool
		if err = r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM catalog_content WHERE id = $1)`,
			c.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return port.ErrNotFound
		}
		return port.ErrVersionConflict
	}
	return nil
}

// CreateCampaign stores a new campaign record.
func (r *CatalogRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	productIDs, err := json.Marshal(c.ProductIDs)
	if err != nil {
		return fmt.Errorf("marshal product ids: %w", err)
	}
	rules, err := json.Marshal(c.Rules)
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}
	metrics, err := json.Marshal(c.Metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, name, type, status, start_date, end_date, discount_type,
     discount_value, product_ids, rules, metrics, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.ID, c.Name, string(c.Type), string(c.Status), c.StartDate,
		c.EndDate, string(c.DiscountType), c.DiscountValue.String(),
		productIDs, rules, metrics, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetCampaign returns a campaign by id.
func (r *CatalogRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var (
		c                          domain.Campaign
		typ, status, discountType  string
		discountValue              string
		productIDs, rules, metrics []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT
    id, name, type, status, start_date, end_date, discount_type,
    discount_value, product_ids, rules, metrics, created_at, updated_at
FROM campaigns WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &typ, &status, &c.StartDate, &c.EndDate,
		&discountType, &discountValue, &productIDs, &rules, &metrics,
		&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c.Type = domain.CampaignType(typ)
	c.Status = domain.CampaignStatus(status)
	c.DiscountType = domain.DiscountType(discountType)
	if c.DiscountValue, err = decimal.NewFromString(discountValue); err != nil {
		return nil, fmt.Errorf("parse discount value: %w", err)
	}
	if err = json.Unmarshal(productIDs, &c.ProductIDs); err != nil {
		return nil, fmt.Errorf("unmarshal product ids: %w", err)
	}
	if err = json.Unmarshal(rules, &c.Rules); err != nil {
		return nil, fmt.Errorf("unmarshal rules: %w", err)
	}
	if err = json.Unmarshal(metrics, &c.Metrics); err != nil {
		return nil, fmt.Errorf("unmarshal metrics: %w", err)
	}
	return &c, nil
}

// CreateBundle stores a new bundle record.
func (r *CatalogRepository) CreateBundle(ctx context.Context, b *domain.Bundle) error {
	items, err := json.Marshal(b.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO bundles
    (id, name, description, items, pricing_strategy, bundle_price_cents,
     savings_cents, availability, valid_from, valid_until, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		b.ID, b.Name, b.Description, items, string(b.PricingStrategy),
		b.BundlePriceCents, b.SavingsCents, string(b.Availability),
		b.ValidFrom, b.ValidUntil, b.CreatedAt, b.UpdatedAt)
	return err
}

// GetBundle returns a bundle by id.
func (r *CatalogRepository) GetBundle(ctx context.Context, id uuid.UUID) (*domain.Bundle, error) {
	var (
		b                      domain.Bundle
		items                  []byte
		strategy, availability string
	)
	err := r.pool.QueryRow(ctx, `SELECT
    id, name, description, items, pricing_strategy, bundle_price_cents,
    savings_cents, availability, valid_from, valid_until, created_at, updated_at
FROM bundles WHERE id = $1`, id).Scan(
		&b.ID, &b.Name, &b.Description, &items, &strategy,
		&b.BundlePriceCents, &b.SavingsCents, &availability,
		&b.ValidFrom, &b.ValidUntil, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(items, &b.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	b.PricingStrategy = domain.PricingStrategy(strategy)
	b.Availability = domain.BundleAvailability(availability)
	return &b, nil
}
