package middleware

import (
	"errors"
	"unicode/utf8"

	"github.com/knowall-ai/site-api/internal/model"
)

// ValidateChatMessages validates the widget's resubmitted history.
func ValidateChatMessages(messages []model.Message) error {
	if len(messages) == 0 {
		return errors.New("messages cannot be empty")
	}
	for _, msg := range messages {
		if msg.Role != model.RoleUser && msg.Role != model.RoleAssistant {
			return errors.New("message role must be user or assistant")
		}
		if err := ValidateMessageContent(msg.Content); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMessageContent validates message content.
func ValidateMessageContent(content string) error {
	if len(content) == 0 {
		return errors.New("content cannot be empty")
	}
	if len(content) > 100000 { // ~100KB limit
		return errors.New("content exceeds maximum length")
	}
	if !utf8.ValidString(content) {
		return errors.New("content must be valid UTF-8")
	}
	return nil
}

// ValidateConversationID validates a client-supplied conversation ID. An
// empty id is allowed; the server generates one.
func ValidateConversationID(id string) error {
	if len(id) > 64 {
		return errors.New("conversation ID exceeds maximum length")
	}
	if !utf8.ValidString(id) {
		return errors.New("conversation ID must be valid UTF-8")
	}
	return nil
}
