package domain

import "fmt"

// WorkflowState is the editorial lifecycle state of a content record.
// The set of states is closed; values outside it never enter the domain.
type WorkflowState string

const (
	StateDraft     WorkflowState = "draft"
	StateReview    WorkflowState = "review"
	StateApproved  WorkflowState = "approved"
	StatePublished WorkflowState = "published"
	StateArchived  WorkflowState = "archived"
)

// ParseWorkflowState converts a raw string into a WorkflowState. Unknown
// values return an error so untyped input never leaks into the domain.
func ParseWorkflowState(s string) (WorkflowState, error) {
	switch WorkflowState(s) {
	case StateDraft, StateReview, StateApproved, StatePublished, StateArchived:
		return WorkflowState(s), nil
	default:
		return "", fmt.Errorf("unknown workflow state %q", s)
	}
}

// IsValid reports whether the state is a member of the closed set.
func (s WorkflowState) IsValid() bool {
	_, err := ParseWorkflowState(string(s))
	return err == nil
}

// IsTerminal reports whether the state has no outgoing transitions.
func (s WorkflowState) IsTerminal() bool {
	return s == StateArchived
}

func (s WorkflowState) String() string {
	return string(s)
}
