// Package service orchestrates the chat proxy flow.
package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/knowall-ai/site-api/internal/llm"
	"github.com/knowall-ai/site-api/internal/model"
	"github.com/knowall-ai/site-api/internal/prompt"
	"github.com/knowall-ai/site-api/internal/store"
	"github.com/knowall-ai/site-api/pkg/metrics"
)

// maxResponseTokens bounds the provider's reply length.
const maxResponseTokens = 500

// emptyReply is returned when the provider answered with no content.
const emptyReply = "I'm sorry, I couldn't process your request."

// ChatService handles one request/response cycle of the conversational
// widget: prompt assembly, the provider call, fallback synthesis, and the
// unconditional transcript append.
type ChatService struct {
	llm     llm.Client // nil when no provider credential is configured
	store   store.Store
	model   string
	timeout time.Duration
	logger  *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewChatService creates a chat service. A nil client means the provider is
// not configured; chat requests then fail before any store access.
func NewChatService(client llm.Client, st store.Store, chatModel string, timeout time.Duration, log *zap.Logger) *ChatService {
	return &ChatService{
		llm:     client,
		store:   st,
		model:   chatModel,
		timeout: timeout,
		logger:  log,
		now:     time.Now,
		newID:   func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}

// ChatInput is one widget request: the resubmitted history plus request
// metadata captured for the transcript.
type ChatInput struct {
	Messages       []model.Message
	ConversationID string
	UserIP         string
	UserAgent      string
}

// Respond runs the full proxy flow. Provider failures never surface: the
// reply degrades to a synthesized fallback and the request still succeeds.
// The only error returned is llm.ErrNotConfigured, which the caller must
// surface; no turn is persisted in that case.
func (s *ChatService) Respond(ctx context.Context, in ChatInput) (*model.ChatResponse, error) {
	conversationID := in.ConversationID
	if conversationID == "" {
		conversationID = strconv.FormatInt(s.now().UnixMilli(), 10)
	}

	log := s.logger.With(zap.String("conversation_id", conversationID))

	if s.llm == nil {
		log.Error("chat request rejected: no provider credential configured")
		metrics.ChatCompletionsTotal.WithLabelValues("error").Inc()
		return nil, llm.ErrNotConfigured
	}

	messages := make([]llm.ChatMessage, 0, len(in.Messages)+1)
	messages = append(messages, llm.ChatMessage{
		Role:    string(model.RoleSystem),
		Content: prompt.Build(conversationID),
	})
	for _, msg := range in.Messages {
		messages = append(messages, llm.ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	log.Debug("sending messages to provider",
		zap.String("provider", s.llm.Name()),
		zap.Int("message_count", len(messages)),
	)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	userMessage := latestUserMessage(in.Messages)

	var content string
	outcome := "success"
	callStart := s.now()

	resp, err := s.llm.Complete(callCtx, &llm.CompletionRequest{
		Model:     s.model,
		Messages:  messages,
		MaxTokens: maxResponseTokens,
	})
	if err != nil {
		// Degrade to the canned reply; the widget never sees a raw
		// provider error.
		outcome = "fallback"
		content = fallbackReply(userMessage)
		log.Warn("provider call failed, using fallback response",
			zap.String("provider", s.llm.Name()),
			zap.String("classification", llm.Classify(err)),
			zap.Error(err),
		)
		metrics.RecordProviderCall(s.llm.Name(), llm.Classify(err), time.Since(callStart).Seconds(), 0, 0)
	} else {
		content = resp.Content
		if content == "" {
			content = emptyReply
		}
		metrics.RecordProviderCall(s.llm.Name(), "success", float64(resp.LatencyMs)/1000.0, resp.TokensIn, resp.TokensOut)
	}

	// Exactly one turn per invocation, success or fallback. Append failure
	// is an operator concern, never the caller's.
	if err := s.store.Append(model.ConversationTurn{
		ID:                conversationID,
		UserMessage:       userMessage,
		AssistantResponse: content,
		UserIP:            in.UserIP,
		UserAgent:         in.UserAgent,
	}); err != nil {
		log.Error("failed to persist chat turn", zap.Error(err))
	}

	metrics.ChatCompletionsTotal.WithLabelValues(outcome).Inc()

	return &model.ChatResponse{
		ID:             s.newID(),
		Role:           model.RoleAssistant,
		Content:        content,
		ConversationID: conversationID,
	}, nil
}

// latestUserMessage returns the content of the last user-role entry, or
// the empty string if the history has none.
func latestUserMessage(messages []model.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == model.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

// fallbackReply synthesizes the degraded reply: it echoes the user's
// message, apologizes, and carries the first sentence of the system prompt
// for light context.
func fallbackReply(userMessage string) string {
	return fmt.Sprintf(
		"I received your message: \"%s\". However, I'm currently experiencing some technical difficulties connecting to my knowledge base. %s Please try again later or contact us directly for more information about our services.",
		userMessage, prompt.FirstSentence(),
	)
}
