// Package history manages persisted chat sessions for one user.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/chat"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/storage"
)

// StorageKey is the key the session list is persisted under.
const StorageKey = "yourrevenueai_chat_history"

var ErrSessionNotFound = errors.New("session not found")

// Store keeps the session list ordered newest-first, capped at
// chat.MaxSessions, and mirrors every mutation to the key-value store.
type Store struct {
	mu       sync.RWMutex
	kv       storage.KeyValue
	sessions []chat.Session
	activeID string
}

// NewStore loads any persisted sessions from kv. A corrupt or unreadable
// blob is logged and discarded so the assistant still starts.
func NewStore(kv storage.KeyValue) *Store {
	s := &Store{kv: kv}
	s.load()
	return s
}

func (s *Store) load() {
	raw, ok := s.kv.Get(StorageKey)
	if !ok || raw == "" {
		return
	}
	var sessions []chat.Session
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		log.Printf("[history] failed to load chat history: %v", err)
		return
	}
	if len(sessions) > chat.MaxSessions {
		sessions = sessions[:chat.MaxSessions]
	}
	s.sessions = sessions
}

// CreateNewSession opens an empty session, makes it active, and returns its
// id. The oldest session is evicted when the cap is exceeded.
func (s *Store) CreateNewSession() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	session := chat.Session{
		ID:        uuid.NewString(),
		Title:     chat.DefaultTitle,
		Messages:  []chat.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions = append([]chat.Session{session}, s.sessions...)
	if len(s.sessions) > chat.MaxSessions {
		s.sessions = s.sessions[:chat.MaxSessions]
	}
	s.activeID = session.ID
	s.persistLocked()
	return session.ID
}

// UpdateSession replaces the message list of an existing session and
// refreshes its title while it still carries the default one. An unknown id
// is ignored: the session may have been evicted by the cap.
func (s *Store) UpdateSession(id string, messages []chat.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sessions {
		if s.sessions[i].ID != id {
			continue
		}
		if s.sessions[i].Title == chat.DefaultTitle && len(messages) > 0 {
			s.sessions[i].Title = chat.DeriveTitle(messages)
		}
		s.sessions[i].Messages = append([]chat.Message(nil), messages...)
		s.sessions[i].UpdatedAt = time.Now()
		s.persistLocked()
		return
	}
}

// LoadSession marks the session active and returns a copy of its messages.
func (s *Store) LoadSession(id string) ([]chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sessions {
		if s.sessions[i].ID != id {
			continue
		}
		s.activeID = id
		return append([]chat.Message(nil), s.sessions[i].Messages...), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
}

// DeleteSession removes one session. Deleting the active session clears the
// active pointer.
func (s *Store) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sessions {
		if s.sessions[i].ID != id {
			continue
		}
		s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
		if s.activeID == id {
			s.activeID = ""
		}
		s.persistLocked()
		return nil
	}
	return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
}

// ClearAllHistory drops every session and removes the persisted blob. It is
// safe to call repeatedly.
func (s *Store) ClearAllHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = nil
	s.activeID = ""
	s.kv.Remove(StorageKey)
}

// Sessions returns the session list newest-first.
func (s *Store) Sessions() []chat.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]chat.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// ActiveID reports the currently active session, empty when none is.
func (s *Store) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

func (s *Store) persistLocked() {
	// An empty list never overwrites a persisted one; ClearAllHistory is
	// the only path that erases stored history.
	if len(s.sessions) == 0 {
		return
	}
	raw, err := json.Marshal(s.sessions)
	if err != nil {
		log.Printf("[history] failed to encode chat history: %v", err)
		return
	}
	if err := s.kv.Set(StorageKey, string(raw)); err != nil {
		log.Printf("[history] failed to save chat history: %v", err)
	}
}
