package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/knowall-ai/site-api/internal/store"
)

// TranscriptHandler handles authenticated transcript retrieval. Bearer
// authentication happens in middleware before these handlers run.
type TranscriptHandler struct {
	store  store.Store
	logger *zap.Logger
}

// NewTranscriptHandler creates a new transcript handler.
func NewTranscriptHandler(st store.Store, log *zap.Logger) *TranscriptHandler {
	return &TranscriptHandler{
		store:  st,
		logger: log,
	}
}

// Get handles GET /api/logs with an optional ?id= query parameter.
func (h *TranscriptHandler) Get(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		turn, ok := h.store.GetByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, "Log not found")
			return
		}
		writeJSON(w, http.StatusOK, turn)
		return
	}

	h.logger.Debug("listing all transcripts")
	writeJSON(w, http.StatusOK, h.store.List())
}
