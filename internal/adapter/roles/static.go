package roles

import (
	"context"

	"mesa-catalog/internal/core/domain"
)

// StaticPermissionService implements port.PermissionService from a
// fixed role -> reachable-states policy. It stands in for an external
// role service; the engine only ever sees the port interface, so a
// remote implementation can be swapped in without touching the core.
type StaticPermissionService struct {
	policy map[string]map[domain.WorkflowState]bool
}

// NewStaticPermissionService builds a service from an explicit policy
// map. The map is copied so later mutation by the caller has no effect.
func NewStaticPermissionService(policy map[string][]domain.WorkflowState) *StaticPermissionService {
	p := make(map[string]map[domain.WorkflowState]bool, len(policy))
	for role, states := range policy {
		set := make(map[domain.WorkflowState]bool, len(states))
		for _, s := range states {
			set[s] = true
		}
		p[role] = set
	}
	return &StaticPermissionService{policy: p}
}

// DefaultPolicy is the editorial role policy used when no custom policy
// is configured. Editors shepherd drafts through review, managers
// approve, publishers publish and archive.
func DefaultPolicy() map[string][]domain.WorkflowState {
	return map[string][]domain.WorkflowState{
		"editor":    {domain.StateDraft, domain.StateReview},
		"manager":   {domain.StateDraft, domain.StateReview, domain.StateApproved},
		"publisher": {domain.StatePublished, domain.StateArchived},
		"admin": {
			domain.StateDraft, domain.StateReview, domain.StateApproved,
			domain.StatePublished, domain.StateArchived,
		},
	}
}

// HasPermission reports whether the role may move content into the
// target state. Unknown roles hold no permissions.
func (s *StaticPermissionService) HasPermission(_ context.Context, role string, target domain.WorkflowState) (bool, error) {
	return s.policy[role][target], nil
}
