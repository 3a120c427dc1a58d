package auth

import (
	"context" // Context for store operations
	"errors"  // Sentinel errors
	"sync"    // Guards the in-memory map
	"time"    // Expiry

	"marketplace_auth/internal/domain" // Roles
)

// Session is the server-side record of a logged-in account on one guard
type Session struct {
	ID        string      `json:"id"`         // Opaque session id, the cookie's jti
	Guard     Guard       `json:"guard"`      // Guard the session belongs to
	AccountID uint        `json:"account_id"` // Logged in account
	Role      domain.Role `json:"role"`       // Account role
	Remember  bool        `json:"remember"`   // Remember me
	IssuedAt  time.Time   `json:"issued_at"`  // Login time
	ExpiresAt time.Time   `json:"expires_at"` // End of the session
}

// IsExpiredAt reports whether the session would be expired at t
func (s *Session) IsExpiredAt(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}

// Guards is the per-browser view of every guard's session
type Guards interface {
	// Establish logs accountID in on guard, replacing any session the browser
	// already had on that guard
	Establish(ctx context.Context, guard Guard, accountID uint, role domain.Role, remember bool) (*Session, error)
	// Current returns the guard's session, or nil when the browser is a guest
	Current(ctx context.Context, guard Guard) (*Session, error)
	// Clear logs the browser out of guard only
	Clear(ctx context.Context, guard Guard) error
}

// SessionStore persists session records. Find returns nil, nil for unknown ids.
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Find(ctx context.Context, guard Guard, id string) (*Session, error)
	Delete(ctx context.Context, guard Guard, id string) error
}

// ErrUnknownGuard is returned when a guard name is not registered
var ErrUnknownGuard = errors.New("unknown guard")

// sessionKey namespaces session records by guard
func sessionKey(guard Guard, id string) string {
	return "session:" + string(guard) + ":" + id
}

// MemorySessionStore keeps sessions in process memory. It backs the
// "memory" session driver and tests.
type MemorySessionStore struct {
	mu       sync.Mutex         // Protects sessions
	sessions map[string]Session // Records by key
	now      func() time.Time   // Clock
}

// NewMemorySessionStore creates an empty in-process store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]Session), now: time.Now}
}

func (m *MemorySessionStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionKey(s.Guard, s.ID)] = *s // Store a copy
	return nil
}

func (m *MemorySessionStore) Find(_ context.Context, guard Guard, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionKey(guard, id)
	s, ok := m.sessions[key]
	if !ok {
		return nil, nil // Unknown id
	}
	// Expired records are dropped on read
	if s.IsExpiredAt(m.now()) {
		delete(m.sessions, key)
		return nil, nil
	}
	return &s, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, guard Guard, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionKey(guard, id)) // Deleting a missing key is a no-op
	return nil
}

// Len returns the number of stored sessions
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
