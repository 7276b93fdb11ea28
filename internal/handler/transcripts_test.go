package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/knowall-ai/site-api/internal/handler"
	"github.com/knowall-ai/site-api/internal/middleware"
	"github.com/knowall-ai/site-api/internal/model"
	"github.com/knowall-ai/site-api/internal/store"
)

const testAdminKey = "test-admin-secret"

// countingStore wraps a Store and counts reads, so tests can assert that
// unauthorized requests never reach storage.
type countingStore struct {
	store.Store
	reads int
}

func (c *countingStore) List() []model.ConversationTurn {
	c.reads++
	return c.Store.List()
}

func (c *countingStore) GetByID(id string) (model.ConversationTurn, bool) {
	c.reads++
	return c.Store.GetByID(id)
}

func newTranscriptServer(t *testing.T, st store.Store) http.Handler {
	t.Helper()

	h := handler.NewTranscriptHandler(st, zap.NewNop())

	r := chi.NewRouter()
	r.With(middleware.AdminAuth(testAdminKey)).Get("/api/logs", h.Get)
	return r
}

func getLogs(t *testing.T, srv http.Handler, target, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, st.Append(model.ConversationTurn{ID: "ABC12345", UserMessage: "hi", AssistantResponse: "hello"}))
	require.NoError(t, st.Append(model.ConversationTurn{ID: "XYZ99", UserMessage: "ping", AssistantResponse: "pong"}))
	return st
}

func TestTranscriptListAll(t *testing.T) {
	srv := newTranscriptServer(t, seededStore(t))

	w := getLogs(t, srv, "/api/logs", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var turns []model.ConversationTurn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &turns))
	require.Len(t, turns, 2)
	assert.Equal(t, "ABC12345", turns[0].ID)
	assert.Equal(t, "XYZ99", turns[1].ID)
}

func TestTranscriptGetByID(t *testing.T) {
	srv := newTranscriptServer(t, seededStore(t))

	w := getLogs(t, srv, "/api/logs?id=ABC12345", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var turn model.ConversationTurn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &turn))
	assert.Equal(t, "ABC12345", turn.ID)
	assert.Equal(t, "hello", turn.AssistantResponse)
}

func TestTranscriptGetByIDNotFound(t *testing.T) {
	srv := newTranscriptServer(t, seededStore(t))

	w := getLogs(t, srv, "/api/logs?id=NOPE", testAdminKey)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestTranscriptUnauthorized(t *testing.T) {
	st := &countingStore{Store: seededStore(t)}
	srv := newTranscriptServer(t, st)

	cases := []struct {
		name   string
		target string
		token  string
	}{
		{"missing token list", "/api/logs", ""},
		{"missing token by id", "/api/logs?id=ABC12345", ""},
		{"wrong token list", "/api/logs", "wrong-secret"},
		{"wrong token by id", "/api/logs?id=ABC12345", "wrong-secret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := getLogs(t, srv, tc.target, tc.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	// The store was never touched on any unauthorized path.
	assert.Zero(t, st.reads)
}

func TestTranscriptMalformedAuthHeader(t *testing.T) {
	srv := newTranscriptServer(t, seededStore(t))

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
