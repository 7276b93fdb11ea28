package model

// ChatRequest is the body the widget posts on every turn: the full prior
// history plus the newest user message, and an optional conversation id.
type ChatRequest struct {
	Messages       []Message `json:"messages"`
	ConversationID string    `json:"conversationId,omitempty"`
}

// ChatResponse is the assistant message returned to the widget.
type ChatResponse struct {
	ID             string `json:"id"`
	Role           Role   `json:"role"`
	Content        string `json:"content"`
	ConversationID string `json:"conversationId"`
}
