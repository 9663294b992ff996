package port

import (
	"context"

	"mesa-catalog/internal/core/domain"
)

// PermissionService answers whether a role may move content into a
// given workflow state. It is an outbound port; the transition
// authority consumes it as an injected capability so the engine stays
// pure and testable.
type PermissionService interface {
	HasPermission(ctx context.Context, role string, target domain.WorkflowState) (bool, error)
}
