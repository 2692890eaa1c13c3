package Session

import (
	"sync"

	"gorm.io/gorm"
)

// Manager hands out one Session per authenticated user. A session is created
// and loaded on first use and dropped on logout; two concurrent sessions see
// each other's writes only after a reload, which is an accepted limitation
// of the single-operator deployment.
type Manager struct {
	db       *gorm.DB
	mu       sync.Mutex
	sessions map[uint]*Session
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{
		db:       db,
		sessions: make(map[uint]*Session),
	}
}

func (m *Manager) Get(userID uint) (*Session, error) {
	m.mu.Lock()
	if session, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return session, nil
	}
	m.mu.Unlock()

	session := NewSession(m.db)
	if err := session.LoadAll(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[userID]; ok {
		return existing, nil
	}
	m.sessions[userID] = session
	return session, nil
}

func (m *Manager) Drop(userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
