// Package drafts keeps the per-session "last entered form values" that
// prefill the creation form after the user chooses to keep a draft.
package drafts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

// Store is keyed by session id. A missing session reads as an empty draft.
type Store interface {
	Get(ctx context.Context, sessionID string) models.Draft
	Set(ctx context.Context, sessionID string, draft models.Draft)
	Clear(ctx context.Context, sessionID string)
}

type entry struct {
	draft   models.Draft
	touched time.Time
}

// MemoryStore is an in-process Store. Drafts idle for longer than the session
// lifetime belong to sessions whose cookie has expired; they are dropped the
// next time any draft is written.
type MemoryStore struct {
	mu      sync.Mutex
	drafts  map[string]entry
	idleTTL time.Duration
	now     func() time.Time
}

// NewMemoryStore returns a store that forgets drafts idle longer than idleTTL.
// A non-positive idleTTL keeps drafts for the life of the process.
func NewMemoryStore(idleTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		drafts:  make(map[string]entry),
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.drafts[sessionID]
	if !ok || s.expired(e) {
		return models.Draft{}
	}
	return e.draft
}

func (s *MemoryStore) Set(_ context.Context, sessionID string, draft models.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purge()
	s.drafts[sessionID] = entry{draft: draft, touched: s.now()}
}

// Clear resets the session's draft to all-empty values.
func (s *MemoryStore) Clear(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, sessionID)
}

// Len reports how many sessions currently hold a draft.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

func (s *MemoryStore) expired(e entry) bool {
	return s.idleTTL > 0 && s.now().Sub(e.touched) > s.idleTTL
}

func (s *MemoryStore) purge() {
	for id, e := range s.drafts {
		if s.expired(e) {
			delete(s.drafts, id)
		}
	}
}
