// Package store provides append-only persistence for conversation turns.
package store

import "github.com/knowall-ai/site-api/internal/model"

// Store is the transcript store. Append reports failure through its error
// return so callers can decide what to do; List and GetByID never fail to
// the caller. Turns are never updated or deleted.
type Store interface {
	// Append assigns the turn's timestamp and persists it.
	Append(turn model.ConversationTurn) error

	// List returns all turns in insertion order, oldest first. Read or
	// parse errors degrade to an empty slice.
	List() []model.ConversationTurn

	// GetByID returns the first turn with the given id.
	GetByID(id string) (model.ConversationTurn, bool)
}
