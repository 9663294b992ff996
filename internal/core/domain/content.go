package domain

import (
	"time"

	"github.com/google/uuid"
)

// Content is an immutable snapshot of a product content record.
// PublishedAt may only be set once the record has reached the published
// state; ApprovedBy may only be set once it has passed approval. Version
// is a monotonic counter bumped on every accepted change.
type Content struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	Title       string
	Description string
	ImageURLs   []string
	Keywords    []string
	State       WorkflowState
	CreatedBy   uuid.UUID
	ApprovedBy  *uuid.UUID
	PublishedAt *time.Time
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
