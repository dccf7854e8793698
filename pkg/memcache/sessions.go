// pkg/memcache/sessions.go
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"hiddengems/internal/explorer"
)

type SessionStore interface {
	Create() explorer.Session

	// Get returns the session and refreshes its expiry. Missing or expired
	// sessions report false.
	Get(id string) (explorer.Session, bool)

	// Update replaces the session with fn(current) under the store lock.
	Update(id string, fn func(explorer.Session) explorer.Session) (explorer.Session, bool)

	// BeginSearch marks a search in flight; false if one already is or the
	// session is gone. Every true result must be paired with EndSearch.
	BeginSearch(id string) bool
	EndSearch(id string)

	Sweep() int
	Len() int
}

type entry struct {
	session   explorer.Session
	expiresAt time.Time
	searching bool
}

type Sessions struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[string]*entry
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]*entry),
	}
}

func (s *Sessions) Create() explorer.Session {
	now := s.now()
	session := explorer.Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = &entry{session: session, expiresAt: now.Add(s.ttl)}
	return session
}

func (s *Sessions) Get(id string) (explorer.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(id)
	if !ok {
		return explorer.Session{}, false
	}
	return e.session, true
}

func (s *Sessions) Update(id string, fn func(explorer.Session) explorer.Session) (explorer.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(id)
	if !ok {
		return explorer.Session{}, false
	}
	e.session = fn(e.session)
	return e.session, true
}

func (s *Sessions) BeginSearch(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(id)
	if !ok || e.searching {
		return false
	}
	e.searching = true
	return true
}

func (s *Sessions) EndSearch(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.data[id]; ok {
		e.searching = false
	}
}

// Sweep removes expired sessions that have no search in flight.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) && !e.searching {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// live must be called with the write lock held.
func (s *Sessions) live(id string) (*entry, bool) {
	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.After(e.expiresAt) && !e.searching {
		delete(s.data, id) // cleanup expired
		return nil, false
	}
	e.expiresAt = now.Add(s.ttl)
	return e, true
}
