package auth

import (
	"net/http" // Cookie SameSite modes
	"time"     // Flash lifetime

	"marketplace_auth/internal/utils" // Token signing

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
)

// FlashCookie carries one-shot messages to the next rendered page
const FlashCookie = "flash"

const flashLifetime = 5 * time.Minute // Unread flashes expire

// Flash is a set of messages shown once and then discarded
type Flash struct {
	Success string            `json:"success,omitempty"` // Success notice
	Info    string            `json:"info,omitempty"`    // Info notice
	Errors  []string          `json:"errors,omitempty"`  // Error list
	Old     map[string]string `json:"old,omitempty"`     // Previously submitted form input
}

// Empty reports whether there is nothing to show
func (f Flash) Empty() bool {
	return f.Success == "" && f.Info == "" && len(f.Errors) == 0 && len(f.Old) == 0
}

// OldInput returns the submitted value of a form field, or ""
func (f Flash) OldInput(field string) string {
	return f.Old[field]
}

type flashClaims struct {
	Flash Flash `json:"flash"` // Queued messages
	jwt.RegisteredClaims
}

// Flasher writes and consumes the flash cookie
type Flasher struct {
	secret string // Signs the flash cookie
	secure bool   // HTTPS only cookie
}

// NewFlasher signs flash cookies with secret
func NewFlasher(secret string, secure bool) *Flasher {
	return &Flasher{secret: secret, secure: secure}
}

// Put queues msg for the next request, replacing any pending flash
func (f *Flasher) Put(c *gin.Context, msg Flash) error {
	now := time.Now() // Issue time
	token, err := utils.SignClaims(flashClaims{
		Flash: msg,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(flashLifetime)),
		},
	}, f.secret)
	if err != nil {
		return err // Return error if signing fails
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, token, int(flashLifetime.Seconds()), "/", "", f.secure, true) // Set the flash cookie
	return nil
}

// Pull returns the pending flash and clears it. Invalid cookies read as empty.
func (f *Flasher) Pull(c *gin.Context) Flash {
	raw, err := c.Cookie(FlashCookie) // Read the flash cookie
	if err != nil || raw == "" {
		return Flash{} // Nothing queued
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, "", -1, "/", "", f.secure, true) // Shown once
	var claims flashClaims
	if err := utils.ParseClaims(raw, f.secret, &claims); err != nil {
		return Flash{} // Forged or expired
	}
	return claims.Flash
}
