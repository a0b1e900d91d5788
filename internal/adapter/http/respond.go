package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adserver/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// badRequest reports a validation failure verbatim.
func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// respondError maps a component-level failure to an HTTP status. Not-found
// family errors surface their own message; anything else is logged and
// reported as a generic internal error.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, port.ErrStrategyNotFound),
		errors.Is(err, port.ErrNoStrategies):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrInvalidBid):
		badRequest(w, err.Error())
	case errors.Is(err, port.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("internal error",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}
