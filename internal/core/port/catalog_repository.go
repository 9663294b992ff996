package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"mesa-catalog/internal/core/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrVersionConflict is returned when an update loses an optimistic
// concurrency race: the stored version no longer matches the one the
// caller read.
var ErrVersionConflict = errors.New("version conflict")

// CatalogRepository defines the persistence layer for validated catalog
// records. It is an outbound port in hexagonal architecture. The engine
// only ever hands it records that passed validation; implementations
// must be concurrency-safe and apply content updates atomically against
// the stored version.
type CatalogRepository interface {
	// CreateContent stores a new content record.
	CreateContent(ctx context.Context, c *domain.Content) error
	// GetContent returns a content record by id, or ErrNotFound.
	GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	// UpdateContent persists an updated content record. The write must
	// only apply when the stored version equals c.Version-1, returning
	// ErrVersionConflict otherwise.
	UpdateContent(ctx context.Context, c *domain.Content) error

	// CreateCampaign stores a new campaign record.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id, or ErrNotFound.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)

	// CreateBundle stores a new bundle record.
	CreateBundle(ctx context.Context, b *domain.Bundle) error
	// GetBundle returns a bundle by id, or ErrNotFound.
	GetBundle(ctx context.Context, id uuid.UUID) (*domain.Bundle, error)
}
