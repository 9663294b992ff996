package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mesa-catalog/internal/core/domain"
	"mesa-catalog/internal/core/port"
	"mesa-catalog/internal/core/port/mocks"
	"mesa-catalog/internal/core/validation"
	"mesa-catalog/internal/core/workflow"
)

func newTestUseCase(t *testing.T, repo port.CatalogRepository, perms port.PermissionService) *CatalogUseCase {
	t.Helper()
	engine, err := validation.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	u := NewCatalogUseCase(repo, engine, workflow.NewAuthority(perms))
	u.now = func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return u
}

func TestCreateContentAssignsIdentity(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	perms := mocks.NewMockPermissionService(t)

	repo.On("CreateContent", mock.Anything, mock.AnythingOfType("*domain.Content")).Return(nil)

	u := newTestUseCase(t, repo, perms)
	record, err := u.CreateContent(context.Background(), validation.ContentInput{
		ProductID: "7d9f36c1-8c3a-4b2e-9a6f-0c1d2e3f4a5b",
		Title:     "Wireless headphones",
		State:     "draft",
		CreatedBy: "3f1b2a4c-5d6e-4f70-8a9b-0c1d2e3f4a5b",
	})
	if err != nil {
		t.Fatalf("CreateContent error: %v", err)
	}
	if record.ID == uuid.Nil {
		t.Errorf("id must be assigned")
	}
	if record.Version != 1 {
		t.Errorf("version: got %d, want 1", record.Version)
	}
	if record.CreatedAt != record.UpdatedAt {
		t.Errorf("fresh record must have equal timestamps")
	}
}

// TestCreateCampaignRejectedNotPersisted ensures a record failing the
// invariant stage never reaches the repository: the mock has no
// expectations, so any call would fail the test.
func TestCreateCampaignRejectedNotPersisted(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	perms := mocks.NewMockPermissionService(t)

	u := newTestUseCase(t, repo, perms)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := u.CreateCampaign(context.Background(), validation.CampaignInput{
		Name:          "Broken sale",
		Type:          "flash_sale",
		Status:        "scheduled",
		StartDate:     start,
		EndDate:       start, // not strictly after
		DiscountType:  "percentage",
		DiscountValue: "120", // over the cap
		ProductIDs:    []string{"7d9f36c1-8c3a-4b2e-9a6f-0c1d2e3f4a5b"},
	})

	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Violations) != 2 {
		t.Errorf("expected both invariant violations, got %v", verr.Violations)
	}
}

func TestCreateBundleHappyPath(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	perms := mocks.NewMockPermissionService(t)

	repo.On("CreateBundle", mock.Anything, mock.AnythingOfType("*domain.Bundle")).Return(nil)

	u := newTestUseCase(t, repo, perms)
	record, err := u.CreateBundle(context.Background(), validation.BundleInput{
		Name: "Starter kit",
		Items: []validation.BundleItemInput{
			{ProductID: "7d9f36c1-8c3a-4b2e-9a6f-0c1d2e3f4a5b", UnitPriceCents: 10, Quantity: 1},
			{ProductID: "3f1b2a4c-5d6e-4f70-8a9b-0c1d2e3f4a5b", UnitPriceCents: 20, Quantity: 1},
		},
		PricingStrategy:  "fixed_price",
		BundlePriceCents: 29,
		SavingsCents:     1,
		Availability:     "active",
		ValidFrom:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateBundle error: %v", err)
	}
	if record.ID == uuid.Nil {
		t.Errorf("id must be assigned")
	}
}

func TestTransitionContentApproval(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	perms := mocks.NewMockPermissionService(t)

	id := uuid.New()
	actor := uuid.New()
	stored := &domain.Content{
		ID:        id,
		ProductID: uuid.New(),
		Title:     "Wireless headphones",
		State:     domain.StateReview,
		CreatedBy: uuid.New(),
		Version:   3,
	}

	repo.On("GetContent", mock.Anything, id).Return(stored, nil)
	perms.On("HasPermission", mock.Anything, "manager", domain.StateApproved).Return(true, nil)
	repo.On("UpdateContent", mock.Anything, mock.AnythingOfType("*domain.Content")).Return(nil)

	u := newTestUseCase(t, repo, perms)
	record, err := u.TransitionContent(context.Background(), id, domain.StateApproved, "manager", actor)
	if err != nil {
		t.Fatalf("TransitionContent error: %v", err)
	}
	if record.State != domain.StateApproved {
		t.Errorf("state: got %s, want approved", record.State)
	}
	if record.ApprovedBy == nil || *record.ApprovedBy != actor {
		t.Errorf("approver not recorded")
	}
	if record.Version != 4 {
		t.Errorf("version: got %d, want 4", record.Version)
	}
}

func TestTransitionContentPublishSetsTimestamp(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	perms := mocks.NewMockPermissionService(t)

	id := uuid.New()
	approver := uuid.New()
	stored := &domain.Content{
		ID:         id,
		State:      domain.StateApproved,
		ApprovedBy: &approver,
		Version:    4,
	}

	repo.On("GetContent", mock.Anything, id).Return(stored, nil)
	perms.On("HasPermission", mock.Anything, "publisher", domain.StatePublished).Return(true, nil)
	repo.On("UpdateContent", mock.Anything, mock.AnythingOfType("*domain.Content")).Return(nil)

	u := newTestUseCase(t, repo, perms)
	record, err := u.TransitionContent(context.Background(), id, domain.StatePublished, "publisher", uuid.New())
	if err != nil {
		t.Fatalf("TransitionContent error: %v", err)
	}
	if record.PublishedAt == nil || !record.PublishedAt.Equal(u.now()) {
		t.Errorf("publish timestamp not set: %v", record.PublishedAt)
	}
}

// TestTransitionContentIllegalJump ensures a direct draft->published
// jump is rejected for every role and nothing is written.
func TestTransitionContentIllegalJump(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	perms := mocks.NewMockPermissionService(t)

	id := uuid.New()
	stored := &domain.Content{ID: id, State: domain.StateDraft, Version: 1}
	repo.On("GetContent", mock.Anything, id).Return(stored, nil)

	u := newTestUseCase(t, repo, perms)
	for _, role := range []string{"editor", "manager", "publisher", "admin"} {
		_, err := u.TransitionContent(context.Background(), id, domain.StatePublished, role, uuid.New())
		var terr *workflow.TransitionError
		if !errors.As(err, &terr) {
			t.Fatalf("role %s: expected TransitionError, got %v", role, err)
		}
	}
	if stored.State != domain.StateDraft || stored.Version != 1 {
		t.Errorf("record mutated despite rejection")
	}
}

func TestTransitionContentNotFound(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	perms := mocks.NewMockPermissionService(t)

	id := uuid.New()
	repo.On("GetContent", mock.Anything, id).Return(nil, port.ErrNotFound)

	u := newTestUseCase(t, repo, perms)
	_, err := u.TransitionContent(context.Background(), id, domain.StateReview, "editor", uuid.New())
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
