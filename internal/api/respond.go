package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/whiterosespeakers/wrs-backend/internal/store"
)

// respondJSON writes a JSON body with the given status. A nil payload
// serializes as a JSON null, which the public article-by-slug path relies
// on.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError writes the {"error": ...} failure shape.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondStoreError maps a storage failure onto the error taxonomy: a miss
// is 404, anything else is a 500 with the original error logged server-side
// only.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, notFoundMsg)
		return
	}
	log.Ctx(r.Context()).Error().Err(err).Msg("storage operation failed")
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// respondUpstreamError is the generic 500 for identity/email/object-store
// failures.
func respondUpstreamError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	log.Ctx(r.Context()).Error().Err(err).Msg(logMsg)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}
