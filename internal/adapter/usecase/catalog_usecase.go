package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mesa-catalog/internal/core/domain"
	"mesa-catalog/internal/core/port"
	"mesa-catalog/internal/core/validation"
	"mesa-catalog/internal/core/workflow"
)

// CatalogUseCase provides the business logic for catalog governance. It
// runs the validation pipeline (field constraints, then cross-field
// invariants, then for state changes the transition authority) and only
// hands records that passed every stage to the repository.
type CatalogUseCase struct {
	repo      port.CatalogRepository
	engine    *validation.Engine
	authority *workflow.Authority

	// now is swappable in tests so assigned timestamps are stable.
	now func() time.Time
}

// NewCatalogUseCase creates a new usecase with the provided
// collaborators.
func NewCatalogUseCase(repo port.CatalogRepository, engine *validation.Engine, authority *workflow.Authority) *CatalogUseCase {
	return &CatalogUseCase{
		repo:      repo,
		engine:    engine,
		authority: authority,
		now:       time.Now,
	}
}

// CreateContent validates the input, checks record invariants and
// stores the resulting content record. Validation failures return a
// *validation.ValidationError carrying every violation found.
func (u *CatalogUseCase) CreateContent(ctx context.Context, in validation.ContentInput) (*domain.Content, error) {
	record, viols := u.engine.ValidateContent(in)
	if len(viols) > 0 {
		return nil, &validation.ValidationError{Violations: viols}
	}
	if viols = validation.CheckContentInvariants(record); len(viols) > 0 {
		return nil, &validation.ValidationError{Violations: viols}
	}

	now := u.now().UTC()
	record.ID = uuid.New()
	record.Version = 1
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := u.repo.CreateContent(ctx, record); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return record, nil
}

// GetContent returns a content record by id.
func (u *CatalogUseCase) GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	return u.repo.GetContent(ctx, id)
}

// TransitionContent moves a content record to the requested workflow
// state. The transition authority is consulted with the record's
// current state, the requested state and the actor's role; an illegal
// edge or missing permission rejects the whole operation and nothing is
// persisted. On success the state-dependent marks are applied and the
// version counter is bumped.
func (u *CatalogUseCase) TransitionContent(ctx context.Context, id uuid.UUID, target domain.WorkflowState, actorRole string, actorID uuid.UUID) (*domain.Content, error) {
	record, err := u.repo.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}

	from := record.State
	if err = u.authority.AssertTransition(ctx, from, target, actorRole); err != nil {
		return nil, err
	}

	now := u.now().UTC()
	switch target {
	case domain.StateApproved:
		record.ApprovedBy = &actorID
	case domain.StatePublished:
		record.PublishedAt = &now
	case domain.StateDraft:
		// review -> draft withdraws the record from review; approval
		// marks from earlier rounds do not exist yet, nothing to clear.
	}
	record.State = target
	record.Version++
	record.UpdatedAt = now

	if err = u.repo.UpdateContent(ctx, record); err != nil {
		return nil, fmt.Errorf("persist transition %s -> %s: %w", from, target, err)
	}
	return record, nil
}

// CreateCampaign validates the input, checks the campaign invariants
// (date ordering, percentage cap) and stores the record.
func (u *CatalogUseCase) CreateCampaign(ctx context.Context, in validation.CampaignInput) (*domain.Campaign, error) {
	record, viols := u.engine.ValidateCampaign(in)
	if len(viols) > 0 {
		return nil, &validation.ValidationError{Violations: viols}
	}
	if viols = validation.CheckCampaignInvariants(record); len(viols) > 0 {
		return nil, &validation.ValidationError{Violations: viols}
	}

	now := u.now().UTC()
	record.ID = uuid.New()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := u.repo.CreateCampaign(ctx, record); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return record, nil
}

// GetCampaign returns a campaign by id.
func (u *CatalogUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.repo.GetCampaign(ctx, id)
}

// CreateBundle validates the input, checks the pricing invariant and
// stores the record.
func (u *CatalogUseCase) CreateBundle(ctx context.Context, in validation.BundleInput) (*domain.Bundle, error) {
	record, viols := u.engine.ValidateBundle(in)
	if len(viols) > 0 {
		return nil, &validation.ValidationError{Violations: viols}
	}
	if viols = validation.CheckBundleInvariants(record); len(viols) > 0 {
		return nil, &validation.ValidationError{Violations: viols}
	}

	now := u.now().UTC()
	record.ID = uuid.New()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := u.repo.CreateBundle(ctx, record); err != nil {
		return nil, fmt.Errorf("create bundle: %w", err)
	}
	return record, nil
}

// GetBundle returns a bundle by id.
func (u *CatalogUseCase) GetBundle(ctx context.Context, id uuid.UUID) (*domain.Bundle, error) {
	return u.repo.GetBundle(ctx, id)
}
