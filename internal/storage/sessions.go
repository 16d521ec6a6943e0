// Package storage holds in-memory state that lives for the process
// lifetime only.
package storage

import (
	"sync"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/service"
)

// SessionStorage tracks the active quiz session per chat. A chat has at
// most one live session; starting a new quiz replaces (and abandons) the
// previous one.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*service.Session
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*service.Session),
	}
}

// Store saves the session for a chat, returning the previous one if any.
func (s *SessionStorage) Store(chatID int64, session *service.Session) *service.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.sessions[chatID]
	s.sessions[chatID] = session
	return prev
}

// Get retrieves the active session for a chat.
func (s *SessionStorage) Get(chatID int64) *service.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[chatID]
}

// Delete removes the session for a chat if it is still the given one.
func (s *SessionStorage) Delete(chatID int64, session *service.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[chatID] == session {
		delete(s.sessions, chatID)
	}
}
