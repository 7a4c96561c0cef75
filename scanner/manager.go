package scanner

import (
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Manager keeps the live scan sessions, one per authenticated user session.
// Sessions are in-process only and die with the server.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	db  *gorm.DB
	log *zap.Logger
}

func NewManager(db *gorm.DB, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		db:       db,
		log:      log,
	}
}

// Open creates a fresh session for the key, replacing (and closing) any
// existing one.
func (m *Manager) Open(key string, companyID uint, mode Mode) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.sessions[key]; ok {
		old.Close()
	}
	s := NewSession(m.db, m.log, companyID, mode)
	m.sessions[key] = s
	return s
}

func (m *Manager) Get(key string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[key]
}

func (m *Manager) Close(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[key]; ok {
		s.Close()
		delete(m.sessions, key)
	}
}
