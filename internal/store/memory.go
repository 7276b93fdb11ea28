package store

import (
	"sync"
	"time"

	"github.com/knowall-ai/site-api/internal/model"
)

// MemoryStore is an in-memory Store for tests and ephemeral deployments.
type MemoryStore struct {
	mu    sync.Mutex
	turns []model.ConversationTurn
	now   func() time.Time
}

// NewMemoryStore creates an empty in-memory transcript store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// Append persists the turn in memory.
func (s *MemoryStore) Append(turn model.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	turn.Timestamp = s.now().UTC().Format(time.RFC3339)
	s.turns = append(s.turns, turn)
	return nil
}

// List returns all turns in insertion order.
func (s *MemoryStore) List() []model.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ConversationTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

// GetByID returns the first turn with the given id.
func (s *MemoryStore) GetByID(id string) (model.ConversationTurn, bool) {
	for _, turn := range s.List() {
		if turn.ID == id {
			return turn, true
		}
	}
	return model.ConversationTurn{}, false
}
