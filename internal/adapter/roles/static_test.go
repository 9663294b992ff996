package roles

import (
	"context"
	"testing"

	"mesa-catalog/internal/core/domain"
)

func TestDefaultPolicy(t *testing.T) {
	svc := NewStaticPermissionService(DefaultPolicy())
	ctx := context.Background()

	cases := []struct {
		role   string
		target domain.WorkflowState
		want   bool
	}{
		{"editor", domain.StateReview, true},
		{"editor", domain.StateApproved, false},
		{"editor", domain.StatePublished, false},
		{"manager", domain.StateApproved, true},
		{"manager", domain.StatePublished, false},
		{"publisher", domain.StatePublished, true},
		{"publisher", domain.StateArchived, true},
		{"admin", domain.StateArchived, true},
		{"", domain.StateReview, false},
		{"intern", domain.StateReview, false},
	}
	for _, tc := range cases {
		got, err := svc.HasPermission(ctx, tc.role, tc.target)
		if err != nil {
			t.Fatalf("HasPermission error: %v", err)
		}
		if got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.role, tc.target, got, tc.want)
		}
	}
}

func TestPolicyCopiedOnConstruction(t *testing.T) {
	policy := map[string][]domain.WorkflowState{
		"editor": {domain.StateReview},
	}
	svc := NewStaticPermissionService(policy)
	policy["editor"] = nil
	delete(policy, "editor")

	ok, _ := svc.HasPermission(context.Background(), "editor", domain.StateReview)
	if !ok {
		t.Errorf("service must not share state with the caller's map")
	}
}
