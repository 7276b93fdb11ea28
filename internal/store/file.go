package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/knowall-ai/site-api/internal/model"
	"github.com/knowall-ai/site-api/pkg/metrics"
)

// FileStore keeps the full transcript as one pretty-printed JSON array at a
// fixed path, rewritten in full on every append. Appends within this process
// are serialized by a mutex; the file is NOT safe under concurrent writers
// from multiple processes (last full-file rewrite wins).
type FileStore struct {
	path   string
	logger *zap.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewFileStore creates a file-backed transcript store. The backing file is
// created lazily on first use.
func NewFileStore(path string, log *zap.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: log,
		now:    time.Now,
	}
}

// Append reads the current collection, adds the turn and rewrites the file.
// A read or parse failure of the existing file is logged and replaced with
// an empty collection so the write path stays available.
func (s *FileStore) Append(turn model.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFile(); err != nil {
		metrics.TranscriptAppendsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("ensure transcript file: %w", err)
	}

	turns, err := s.read()
	if err != nil {
		// Keep the write path available; prior entries stay on disk until
		// this rewrite lands, but this process can no longer see them.
		s.logger.Warn("transcript file unreadable, starting a fresh collection",
			zap.String("path", s.path),
			zap.Error(err),
		)
		turns = []model.ConversationTurn{}
	}

	turn.Timestamp = s.now().UTC().Format(time.RFC3339)
	turns = append(turns, turn)

	if err := s.write(turns); err != nil {
		metrics.TranscriptAppendsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("write transcript file: %w", err)
	}

	metrics.TranscriptAppendsTotal.WithLabelValues("ok").Inc()
	s.logger.Debug("chat log saved",
		zap.String("id", turn.ID),
		zap.Int("total_turns", len(turns)),
	)
	return nil
}

// List returns every turn in storage order. Errors are logged and degrade
// to an empty slice.
func (s *FileStore) List() []model.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFile(); err != nil {
		s.logger.Error("failed to initialize transcript file", zap.String("path", s.path), zap.Error(err))
		return []model.ConversationTurn{}
	}

	turns, err := s.read()
	if err != nil {
		s.logger.Error("failed to read transcript file", zap.String("path", s.path), zap.Error(err))
		return []model.ConversationTurn{}
	}
	return turns
}

// GetByID scans the collection for the first turn with the given id.
func (s *FileStore) GetByID(id string) (model.ConversationTurn, bool) {
	for _, turn := range s.List() {
		if turn.ID == id {
			return turn, true
		}
	}
	return model.ConversationTurn{}, false
}

// Ping reports whether the backing file can be created and opened. Used by
// the readiness probe.
func (s *FileStore) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureFile()
}

func (s *FileStore) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return s.write([]model.ConversationTurn{})
	} else if err != nil {
		return err
	}
	return nil
}

func (s *FileStore) read() ([]model.ConversationTurn, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var turns []model.ConversationTurn
	if err := json.Unmarshal(raw, &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

// write lands the collection through a temp file and rename so the document
// stays valid JSON across a crash mid-write.
func (s *FileStore) write(turns []model.ConversationTurn) error {
	raw, err := json.MarshalIndent(turns, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
