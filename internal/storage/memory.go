package storage

import (
	"sync"
	"time"

	"github.com/YousifAziz000/lifting-bot-rlbr/internal/models"
)

// MemorySessionStore keeps the channel-to-session mapping in process memory.
// Sessions never expire on a timer; they end explicitly or with the process.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*models.Session),
	}
}

func (m *MemorySessionStore) Get(channelID string) (*models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[channelID]
	if !ok {
		return nil, false
	}

	copied := *session
	return &copied, true
}

func (m *MemorySessionStore) Start(channelID, sessionID string) *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := &models.Session{
		ChannelID: channelID,
		SessionID: sessionID,
		StartedAt: time.Now(),
	}
	m.sessions[channelID] = session

	copied := *session
	return &copied
}

func (m *MemorySessionStore) End(channelID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, channelID)
}

func (m *MemorySessionStore) Active() []*models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	active := make([]*models.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		copied := *session
		active = append(active, &copied)
	}
	return active
}
