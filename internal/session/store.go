package session

import (
	"sync"
	"time"

	"github.com/kdimtricp/repcheck/internal/models"
)

// Store keeps session contexts in memory for the lifetime of the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]models.Session)}
}

func (s *Store) Put(sess *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
}

// Get returns a copy so callers cannot alter the stored context.
func (s *Store) Get(id string) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions created before cutoff and returns how many went.
func (s *Store) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
