package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-catalog/internal/core/domain"
	"mesa-catalog/internal/core/validation"
)

// CatalogUseCase defines the business operations exposed by the catalog
// governance engine. This interface is the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
//
// Every Create/Transition operation follows the same pipeline: field
// validation, then cross-field invariants, then (for state changes) the
// workflow transition authority. A failed stage short-circuits with a
// *validation.ValidationError or *workflow.TransitionError; records
// that fail any stage are never persisted.
type CatalogUseCase interface {
	// CreateContent validates and stores a new content record. The id,
	// version counter and timestamps are assigned by the engine.
	CreateContent(ctx context.Context, in validation.ContentInput) (*domain.Content, error)
	// GetContent returns a content record by id, or ErrNotFound.
	GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	// TransitionContent moves a content record to the requested
	// workflow state on behalf of the given actor. Side effects: the
	// approver is recorded when entering approved, the publish time
	// when entering published, and the version counter is bumped.
	TransitionContent(ctx context.Context, id uuid.UUID, target domain.WorkflowState, actorRole string, actorID uuid.UUID) (*domain.Content, error)

	// CreateCampaign validates and stores a new campaign record.
	CreateCampaign(ctx context.Context, in validation.CampaignInput) (*domain.Campaign, error)
	// GetCampaign returns a campaign by id, or ErrNotFound.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)

	// CreateBundle validates and stores a new bundle record.
	CreateBundle(ctx context.Context, in validation.BundleInput) (*domain.Bundle, error)
	// GetBundle returns a bundle by id, or ErrNotFound.
	GetBundle(ctx context.Context, id uuid.UUID) (*domain.Bundle, error)
}
