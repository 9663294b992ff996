package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"mesa-catalog/internal/core/port"
	"mesa-catalog/internal/core/validation"
	"mesa-catalog/internal/core/workflow"
)

// violationsResponse is the body returned for rejected records. Every
// violation found in the single validation pass is included.
type violationsResponse struct {
	Violations []validation.Violation `json:"violations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status. Encoding failures are
// logged and otherwise ignored since the status line is already sent.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps engine errors onto HTTP statuses: validation
// failures become 422 with the full violation list, illegal workflow
// edges 409, missing permissions 403, unknown records 404 and version
// races 409. Anything else is an internal error.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		h.writeJSON(w, http.StatusUnprocessableEntity, violationsResponse{Violations: verr.Violations})
		return
	}

	var terr *workflow.TransitionError
	if errors.As(err, &terr) {
		status := http.StatusConflict
		if terr.Reason == workflow.ReasonPermissionDenied {
			status = http.StatusForbidden
		}
		h.writeJSON(w, status, errorResponse{Error: terr.Error()})
		return
	}

	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, port.ErrVersionConflict):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: "version conflict, retry with fresh record"})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
