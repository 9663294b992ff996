package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mesa-catalog/internal/core/domain"
	"mesa-catalog/internal/core/validation"
)

// contentResponse is the wire shape of a content record.
type contentResponse struct {
	ID          string     `json:"id"`
	ProductID   string     `json:"product_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ImageURLs   []string   `json:"image_urls,omitempty"`
	Keywords    []string   `json:"keywords,omitempty"`
	State       string     `json:"state"`
	CreatedBy   string     `json:"created_by"`
	ApprovedBy  *string    `json:"approved_by,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Version     int64      `json:"version"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toContentResponse(c *domain.Content) contentResponse {
	resp := contentResponse{
		ID:          c.ID.String(),
		ProductID:   c.ProductID.String(),
		Title:       c.Title,
		Description: c.Description,
		ImageURLs:   c.ImageURLs,
		Keywords:    c.Keywords,
		State:       c.State.String(),
		CreatedBy:   c.CreatedBy.String(),
		PublishedAt: c.PublishedAt,
		Version:     c.Version,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.ApprovedBy != nil {
		s := c.ApprovedBy.String()
		resp.ApprovedBy = &s
	}
	return resp
}

// handleCreateContent validates and stores a new content record. The
// request body is decoded into a validation.ContentInput. Constraint
// and invariant failures return 422 with the full violation list;
// parsing errors produce HTTP 400.
func (h *Handler) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	var in validation.ContentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	record, err := h.svc.CreateContent(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toContentResponse(record))
}

// handleGetContent returns a content record by its {id} path parameter.
func (h *Handler) handleGetContent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	record, err := h.svc.GetContent(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toContentResponse(record))
}

// transitionRequest asks to move a content record to a new workflow
// state on behalf of an actor.
type transitionRequest struct {
	TargetState string `json:"target_state"`
	ActorRole   string `json:"actor_role"`
	ActorID     string `json:"actor_id"`
}

// handleTransitionContent moves a content record through the workflow.
// Illegal edges return 409 and missing permissions 403; the transition
// is never partially applied.
func (h *Handler) handleTransitionContent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req transitionRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	target, err := domain.ParseWorkflowState(req.TargetState)
	if err != nil {
		http.Error(w, "unknown target state", http.StatusBadRequest)
		return
	}
	actorID, err := uuid.Parse(req.ActorID)
	if err != nil {
		http.Error(w, "invalid actor_id", http.StatusBadRequest)
		return
	}
	record, err := h.svc.TransitionContent(r.Context(), id, target, req.ActorRole, actorID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toContentResponse(record))
}
