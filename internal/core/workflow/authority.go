package workflow

import (
	"context"
	"errors"
	"fmt"

	"mesa-catalog/internal/core/domain"
	"mesa-catalog/internal/core/port"
)

// transitions is the fixed directed graph of legal workflow moves.
// archived is terminal. Jumps that skip intermediate states are not in
// the table and therefore always illegal, regardless of role.
var transitions = map[domain.WorkflowState]map[domain.WorkflowState]bool{
	domain.StateDraft: {
		domain.StateReview: true,
	},
	domain.StateReview: {
		domain.StateApproved: true,
		domain.StateDraft:    true,
	},
	domain.StateApproved: {
		domain.StatePublished: true,
	},
	domain.StatePublished: {
		domain.StateArchived: true,
	},
	domain.StateArchived: {},
}

// TransitionReason classifies why a transition was rejected.
type TransitionReason string

const (
	// ReasonIllegalEdge means the transition table has no edge from the
	// current state to the requested one.
	ReasonIllegalEdge TransitionReason = "illegal_edge"
	// ReasonPermissionDenied means the edge exists but the actor's role
	// lacks permission for the destination state.
	ReasonPermissionDenied TransitionReason = "permission_denied"
)

// TransitionError is the caller-visible rejection of a state change.
// It is a single terminal decision, never retried by the engine.
type TransitionError struct {
	From   domain.WorkflowState
	To     domain.WorkflowState
	Role   string
	Reason TransitionReason
}

func (e *TransitionError) Error() string {
	switch e.Reason {
	case ReasonPermissionDenied:
		return fmt.Sprintf("role %q lacks permission to move content to %s", e.Role, e.To)
	default:
		return fmt.Sprintf("illegal transition %s -> %s", e.From, e.To)
	}
}

// AllowedTransitions returns the destination states reachable from the
// given state. The result is a fresh slice; callers may mutate it.
func AllowedTransitions(from domain.WorkflowState) []domain.WorkflowState {
	dests := transitions[from]
	out := make([]domain.WorkflowState, 0, len(dests))
	for _, s := range []domain.WorkflowState{
		domain.StateDraft, domain.StateReview, domain.StateApproved,
		domain.StatePublished, domain.StateArchived,
	} {
		if dests[s] {
			out = append(out, s)
		}
	}
	return out
}

// Authority decides whether workflow transitions are permitted. The
// transition table is fixed; role permissions come from the injected
// PermissionService.
type Authority struct {
	perms port.PermissionService
}

// NewAuthority returns an Authority backed by the given permission
// service.
func NewAuthority(perms port.PermissionService) *Authority {
	return &Authority{perms: perms}
}

// CanTransition reports whether the actor may move content from the
// current state to the requested one. The error is only non-nil when
// the permission lookup itself fails.
func (a *Authority) CanTransition(ctx context.Context, from, to domain.WorkflowState, role string) (bool, error) {
	err := a.AssertTransition(ctx, from, to, role)
	if err == nil {
		return true, nil
	}
	var terr *TransitionError
	if errors.As(err, &terr) {
		return false, nil
	}
	return false, err
}

// AssertTransition validates the requested move and returns a
// *TransitionError describing the disallowed edge or missing
// permission. Any other error comes from the permission service.
func (a *Authority) AssertTransition(ctx context.Context, from, to domain.WorkflowState, role string) error {
	dests, ok := transitions[from]
	if !ok || !dests[to] {
		return &TransitionError{From: from, To: to, Role: role, Reason: ReasonIllegalEdge}
	}
	allowed, err := a.perms.HasPermission(ctx, role, to)
	if err != nil {
		return fmt.Errorf("permission lookup for role %q: %w", role, err)
	}
	if !allowed {
		return &TransitionError{From: from, To: to, Role: role, Reason: ReasonPermissionDenied}
	}
	return nil
}
