// Package model defines data structures for the site API.
package model

// Role represents the role of a message sender.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation history the widget resubmits
// on every turn. It is transient and never persisted directly.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ConversationTurn is one persisted user/assistant exchange. The id is the
// conversation id the turn belongs to; the timestamp is assigned by the
// store at write time. Field names match the transcript file contract.
type ConversationTurn struct {
	ID                string `json:"id"`
	Timestamp         string `json:"timestamp"`
	UserMessage       string `json:"userMessage"`
	AssistantResponse string `json:"assistantResponse"`
	UserIP            string `json:"userIp,omitempty"`
	UserAgent         string `json:"userAgent,omitempty"`
}
