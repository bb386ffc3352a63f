package store

import (
	"sync"

	"github.com/sherlockhq/leakengine/internal/insight"
	"github.com/sherlockhq/leakengine/internal/models"
)

// ConversationStore keeps one append-only message log per session ID.
// Logs live only in memory for the lifetime of the session.
type ConversationStore struct {
	mu   sync.RWMutex
	logs map[string]insight.Log
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{logs: make(map[string]insight.Log)}
}

// Append adds a message to the session's log; a nil message is a no-op.
func (s *ConversationStore) Append(sessionID string, msg *models.Message) {
	if msg == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[sessionID] = insight.Append(s.logs[sessionID], msg)
}

// History returns a copy of the session's log, oldest first. Unknown
// sessions yield an empty log.
func (s *ConversationStore) History(sessionID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := s.logs[sessionID]
	out := make([]models.Message, len(log))
	copy(out, log)
	return out
}
