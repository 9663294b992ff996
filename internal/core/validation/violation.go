package validation

import (
	"fmt"
	"strings"
)

// Violation describes a single failed field constraint or record
// invariant. Field is the JSON path of the offending field, Constraint
// names the rule that failed and Message is human readable.
type Violation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.Field, v.Message, v.Constraint)
}

// ValidationError aggregates every violation found in one pass. Checks
// are fail-slow so a caller gets the whole picture in a single round
// trip instead of fixing errors one at a time.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
