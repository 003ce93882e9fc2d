package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/axionlabs/axion-backend/internal/query"
	"github.com/axionlabs/axion-backend/internal/store"
	"github.com/axionlabs/axion-backend/logger"
	"github.com/axionlabs/axion-backend/middleware"
	"github.com/axionlabs/axion-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}

// fakeStore is an in-memory ResourceStore. It records the last list query
// so tests can assert on the composed SQL fragments.
type fakeStore[T types.Entity] struct {
	items     map[string]T
	lastQuery query.Query
	err       error
	seq       int
}

func newFakeStore[T types.Entity]() *fakeStore[T] {
	return &fakeStore[T]{items: make(map[string]T)}
}

func (s *fakeStore[T]) List(_ context.Context, q query.Query) ([]T, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastQuery = q
	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *fakeStore[T]) Get(_ context.Context, id string) (T, error) {
	var zero T
	if s.err != nil {
		return zero, s.err
	}
	entity, ok := s.items[id]
	if !ok {
		return zero, store.ErrNotFound
	}
	return entity, nil
}

func (s *fakeStore[T]) Create(_ context.Context, entity T) error {
	if s.err != nil {
		return s.err
	}
	s.seq++
	entity.Stamp(testID(s.seq), testNow())
	s.items[entity.RecordID()] = entity
	return nil
}

func (s *fakeStore[T]) Update(_ context.Context, entity T) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.items[entity.RecordID()]; !ok {
		return store.ErrNotFound
	}
	entity.Touch(testNow())
	s.items[entity.RecordID()] = entity
	return nil
}

func (s *fakeStore[T]) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// fakeFeedbackStore layers SetApproved on the generic fake.
type fakeFeedbackStore struct {
	*fakeStore[*types.Feedback]
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{fakeStore: newFakeStore[*types.Feedback]()}
}

func (s *fakeFeedbackStore) SetApproved(_ context.Context, id string, approved bool) error {
	f, ok := s.items[id]
	if !ok {
		return store.ErrNotFound
	}
	f.Approved = approved
	f.Touch(testNow())
	return nil
}

// fakeMailer records notifications and can simulate delivery failure.
type fakeMailer struct {
	sent []*types.Contact
	err  error
}

func (m *fakeMailer) SendContactNotification(_ context.Context, contact *types.Contact) error {
	m.sent = append(m.sent, contact)
	return m.err
}

func testID(seq int) string {
	return fmt.Sprintf("test-id-%d", seq)
}

func testNow() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

// setupRouter builds a minimal engine with the error handler and a stub
// auth layer that marks every request with the given flag.
func setupRouter(authed bool, register func(*gin.RouterGroup)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(func(c *gin.Context) {
		c.Set(string(middleware.AuthenticatedKey), authed)
	})
	api := r.Group("/api")
	register(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
