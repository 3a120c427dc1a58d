package auth

import (
	"context"  // Context for store operations
	"fmt"      // Error wrapping
	"net/http" // Cookie SameSite modes
	"time"     // Lifetimes

	"marketplace_auth/internal/domain" // Roles
	"marketplace_auth/internal/utils"  // Token signing

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // Session ids
	"github.com/sirupsen/logrus"   // Logging library
)

// Default session lifetimes
const (
	DefaultLifetime         = 120 * time.Minute   // Plain session
	DefaultRememberLifetime = 30 * 24 * time.Hour // Remember me session
)

// SessionClaims is what the guard cookie carries. The session record itself
// stays in the store; the claims only point at it.
type SessionClaims struct {
	Guard     Guard  `json:"guard"`      // Guard the cookie was minted for
	AccountID uint   `json:"account_id"` // Logged in account
	Role      string `json:"role"`       // Account role
	jwt.RegisteredClaims
}

// ManagerConfig tunes cookie signing and lifetimes
type ManagerConfig struct {
	Secret           string        // Signs guard cookies
	Lifetime         time.Duration // Plain session lifetime
	RememberLifetime time.Duration // Remember me lifetime
	Secure           bool          // HTTPS only cookies
}

// Manager issues and resolves guard sessions
type Manager struct {
	store SessionStore     // Session records
	cfg   ManagerConfig    // Signing and lifetimes
	now   func() time.Time // Clock
}

// NewManager creates a session manager backed by store
func NewManager(store SessionStore, cfg ManagerConfig) *Manager {
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = DefaultLifetime // Fall back to the default lifetime
	}
	if cfg.RememberLifetime <= 0 {
		cfg.RememberLifetime = DefaultRememberLifetime // Fall back to the default remember lifetime
	}
	return &Manager{store: store, cfg: cfg, now: time.Now}
}

// Bind returns the guards of the browser behind c
func (m *Manager) Bind(c *gin.Context) Guards {
	return &browserGuards{m: m, c: c}
}

// lifetime picks the session duration for the remember flag
func (m *Manager) lifetime(remember bool) time.Duration {
	if remember {
		return m.cfg.RememberLifetime
	}
	return m.cfg.Lifetime
}

// cached is stored on the gin context so a session established or cleared
// earlier in the same request is visible to later reads
type cached struct {
	session *Session
}

type browserGuards struct {
	m *Manager     // Owning manager
	c *gin.Context // Request the guards are bound to
}

func (b *browserGuards) Establish(ctx context.Context, guard Guard, accountID uint, role domain.Role, remember bool) (*Session, error) {
	if !guard.Valid() {
		return nil, fmt.Errorf("establish %q: %w", guard, ErrUnknownGuard)
	}
	// At most one session per guard and browser
	if err := b.dropExisting(ctx, guard); err != nil {
		return nil, err
	}

	now := b.m.now()              // Issue time
	ttl := b.m.lifetime(remember) // Session lifetime
	sess := &Session{
		ID:        uuid.NewString(), // Opaque session id
		Guard:     guard,
		AccountID: accountID,
		Role:      role,
		Remember:  remember,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	if err := b.m.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("establish %s session: %w", guard, err)
	}

	// Sign the cookie pointing at the record
	token, err := utils.SignClaims(SessionClaims{
		Guard:     guard,
		AccountID: accountID,
		Role:      string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}, b.m.cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("sign %s session: %w", guard, err)
	}

	maxAge := 0 // Browser-session cookie unless remembered
	if remember {
		maxAge = int(ttl.Seconds())
	}
	b.c.SetSameSite(http.SameSiteLaxMode)
	b.c.SetCookie(guard.CookieName(), token, maxAge, "/", "", b.m.cfg.Secure, true)
	b.c.Set(guard.contextKey(), cached{session: sess}) // Visible to the rest of the request
	return sess, nil
}

func (b *browserGuards) Current(ctx context.Context, guard Guard) (*Session, error) {
	// Established or cleared earlier in this request
	if hit, ok := b.cachedSession(guard); ok {
		return hit, nil
	}
	claims := b.claims(guard) // Verified cookie claims
	if claims == nil {
		return nil, nil
	}
	sess, err := b.m.store.Find(ctx, guard, claims.ID) // Look up the record
	if err != nil {
		return nil, fmt.Errorf("resolve %s session: %w", guard, err)
	}
	// The record must still match the cookie
	if sess == nil || sess.Guard != guard || sess.AccountID != claims.AccountID || sess.IsExpiredAt(b.m.now()) {
		sess = nil
	}
	b.c.Set(guard.contextKey(), cached{session: sess})
	return sess, nil
}

func (b *browserGuards) Clear(ctx context.Context, guard Guard) error {
	if err := b.dropExisting(ctx, guard); err != nil {
		return err
	}
	b.c.SetSameSite(http.SameSiteLaxMode)
	b.c.SetCookie(guard.CookieName(), "", -1, "/", "", b.m.cfg.Secure, true) // Expire the cookie
	b.c.Set(guard.contextKey(), cached{})                                    // Guest for the rest of the request
	return nil
}

// cachedSession returns the session resolved earlier in this request, if any
func (b *browserGuards) cachedSession(guard Guard) (*Session, bool) {
	v, ok := b.c.Get(guard.contextKey())
	if !ok {
		return nil, false
	}
	hit, ok := v.(cached)
	if !ok {
		return nil, false
	}
	return hit.session, true
}

// dropExisting deletes the record the guard cookie points at and the one
// established earlier in this request, which has no cookie on the request yet
func (b *browserGuards) dropExisting(ctx context.Context, guard Guard) error {
	var ids []string // Records to delete
	if claims := b.claims(guard); claims != nil {
		ids = append(ids, claims.ID)
	}
	if hit, ok := b.cachedSession(guard); ok && hit != nil {
		ids = append(ids, hit.ID)
	}
	for _, id := range ids {
		if err := b.m.store.Delete(ctx, guard, id); err != nil {
			return fmt.Errorf("drop %s session: %w", guard, err)
		}
	}
	return nil
}

// claims returns the verified claims of the guard cookie, or nil when the
// cookie is missing, tampered with, expired or minted for another guard
func (b *browserGuards) claims(guard Guard) *SessionClaims {
	raw, err := b.c.Cookie(guard.CookieName()) // Read the guard cookie
	if err != nil || raw == "" {
		return nil
	}
	var claims SessionClaims
	if err := utils.ParseClaims(raw, b.m.cfg.Secret, &claims); err != nil {
		logrus.WithFields(logrus.Fields{
			"guard": guard,       // Guard name
			"error": err.Error(), // Error message
		}).Debug("Ignoring invalid session cookie")
		return nil
	}
	// Claims minted for another guard are ignored
	if claims.Guard != guard || claims.ID == "" {
		return nil
	}
	return &claims
}
