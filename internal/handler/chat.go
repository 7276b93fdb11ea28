// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/knowall-ai/site-api/internal/llm"
	"github.com/knowall-ai/site-api/internal/middleware"
	"github.com/knowall-ai/site-api/internal/model"
	"github.com/knowall-ai/site-api/internal/service"
)

// ChatHandler handles the conversational widget endpoint.
type ChatHandler struct {
	service *service.ChatService
	logger  *zap.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(svc *service.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: svc,
		logger:  log,
	}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateChatMessages(req.Messages); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := middleware.ValidateConversationID(req.ConversationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Respond(r.Context(), service.ChatInput{
		Messages:       req.Messages,
		ConversationID: req.ConversationID,
		UserIP:         clientIP(r),
		UserAgent:      userAgent(r),
	})
	if err != nil {
		// Detail stays server-side; the widget only sees a generic message.
		if !errors.Is(err, llm.ErrNotConfigured) {
			h.logger.Error("chat request failed",
				zap.String("correlation_id", middleware.GetCorrelationID(r.Context())),
				zap.Error(err),
			)
		}
		writeError(w, http.StatusInternalServerError, "An error occurred in the chat API. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// clientIP reads the forwarded-for header the way the transcript records
// it: the raw header or "unknown".
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return "unknown"
}

func userAgent(r *http.Request) string {
	if ua := r.UserAgent(); ua != "" {
		return ua
	}
	return "unknown"
}
