package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/knowall-ai/site-api/internal/model"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "chat-logs.json")
	return NewFileStore(path, zap.NewNop()), path
}

func TestAppendAndGetByIDRoundTrip(t *testing.T) {
	s, _ := newTestFileStore(t)

	err := s.Append(model.ConversationTurn{
		ID:                "ABC12345",
		UserMessage:       "What services do you offer?",
		AssistantResponse: "We offer AI consultancy...",
		UserIP:            "203.0.113.7",
		UserAgent:         "Mozilla/5.0",
	})
	require.NoError(t, err)

	turn, ok := s.GetByID("ABC12345")
	require.True(t, ok)
	assert.Equal(t, "ABC12345", turn.ID)
	assert.Equal(t, "What services do you offer?", turn.UserMessage)
	assert.Equal(t, "We offer AI consultancy...", turn.AssistantResponse)
	assert.Equal(t, "203.0.113.7", turn.UserIP)
	assert.Equal(t, "Mozilla/5.0", turn.UserAgent)
	assert.NotEmpty(t, turn.Timestamp)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s, _ := newTestFileStore(t)

	for _, id := range []string{"first", "second", "third"} {
		require.NoError(t, s.Append(model.ConversationTurn{ID: id}))
	}

	turns := s.List()
	require.Len(t, turns, 3)
	assert.Equal(t, "first", turns[0].ID)
	assert.Equal(t, "second", turns[1].ID)
	assert.Equal(t, "third", turns[2].ID)
}

func TestListIsIdempotent(t *testing.T) {
	s, _ := newTestFileStore(t)
	require.NoError(t, s.Append(model.ConversationTurn{ID: "a"}))
	require.NoError(t, s.Append(model.ConversationTurn{ID: "b"}))

	assert.Equal(t, s.List(), s.List())
}

func TestListOnMissingFileReturnsEmpty(t *testing.T) {
	s, path := newTestFileStore(t)

	turns := s.List()
	assert.Empty(t, turns)

	// List initialized the backing file with an empty collection.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestListOnCorruptFileReturnsEmpty(t *testing.T) {
	s, path := newTestFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Empty(t, s.List())
}

func TestAppendOnCorruptFileStartsFresh(t *testing.T) {
	s, path := newTestFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	require.NoError(t, s.Append(model.ConversationTurn{ID: "survivor"}))

	turns := s.List()
	require.Len(t, turns, 1)
	assert.Equal(t, "survivor", turns[0].ID)
}

func TestGetByIDMiss(t *testing.T) {
	s, _ := newTestFileStore(t)
	require.NoError(t, s.Append(model.ConversationTurn{ID: "present"}))

	_, ok := s.GetByID("absent")
	assert.False(t, ok)
}

func TestFileIsValidJSONDocument(t *testing.T) {
	s, path := newTestFileStore(t)
	require.NoError(t, s.Append(model.ConversationTurn{ID: "x", UserMessage: "hi"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var turns []model.ConversationTurn
	require.NoError(t, json.Unmarshal(raw, &turns))
	require.Len(t, turns, 1)
	assert.Equal(t, "x", turns[0].ID)
}
