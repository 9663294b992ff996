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

// campaignResponse is the wire shape of a campaign record.
type campaignResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Type          string                 `json:"type"`
	Status        string                 `json:"status"`
	StartDate     time.Time              `json:"start_date"`
	EndDate       time.Time              `json:"end_date"`
	DiscountType  string                 `json:"discount_type"`
	DiscountValue string                 `json:"discount_value"`
	ProductIDs    []string               `json:"product_ids"`
	Rules         []domain.CampaignRule  `json:"rules,omitempty"`
	Metrics       domain.CampaignMetrics `json:"metrics"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	ids := make([]string, len(c.ProductIDs))
	for i, id := range c.ProductIDs {
		ids[i] = id.String()
	}
	return campaignResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Type:          string(c.Type),
		Status:        string(c.Status),
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		DiscountType:  string(c.DiscountType),
		DiscountValue: c.DiscountValue.String(),
		ProductIDs:    ids,
		Rules:         c.Rules,
		Metrics:       c.Metrics,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// handleCreateCampaign validates and stores a new campaign. Constraint
// and invariant failures (bad dates, percentage over the cap) return
// 422 with the aggregated violation list.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in validation.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	record, err := h.svc.CreateCampaign(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(record))
}

// handleGetCampaign returns a campaign by its {id} path parameter.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	record, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(record))
}
