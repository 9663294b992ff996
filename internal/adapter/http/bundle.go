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

// bundleResponse is the wire shape of a bundle record.
type bundleResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Description      string              `json:"description,omitempty"`
	Items            []domain.BundleItem `json:"items"`
	PricingStrategy  string              `json:"pricing_strategy"`
	BundlePriceCents int64               `json:"bundle_price_cents"`
	SavingsCents     int64               `json:"savings_cents"`
	Availability     string              `json:"availability"`
	ValidFrom        time.Time           `json:"valid_from"`
	ValidUntil       time.Time           `json:"valid_until"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func toBundleResponse(b *domain.Bundle) bundleResponse {
	return bundleResponse{
		ID:               b.ID.String(),
		Name:             b.Name,
		Description:      b.Description,
		Items:            b.Items,
		PricingStrategy:  string(b.PricingStrategy),
		BundlePriceCents: b.BundlePriceCents,
		SavingsCents:     b.SavingsCents,
		Availability:     string(b.Availability),
		ValidFrom:        b.ValidFrom,
		ValidUntil:       b.ValidUntil,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// handleCreateBundle validates and stores a new bundle. A bundle whose
// price does not undercut the sum of its parts is rejected with 422.
func (h *Handler) handleCreateBundle(w http.ResponseWriter, r *http.Request) {
	var in validation.BundleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	record, err := h.svc.CreateBundle(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toBundleResponse(record))
}

// handleGetBundle returns a bundle by its {id} path parameter.
func (h *Handler) handleGetBundle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	record, err := h.svc.GetBundle(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toBundleResponse(record))
}
