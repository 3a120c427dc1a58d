package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"marketplace_auth/internal/auth" // Guard sessions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SessionKey is the gin context key holding the authenticated *auth.Session
const SessionKey = "session"

// CurrentSession returns the session stored by RequireGuard, or nil
func CurrentSession(c *gin.Context) *auth.Session {
	if v, ok := c.Get(SessionKey); ok {
		if sess, ok := v.(*auth.Session); ok {
			return sess
		}
	}
	return nil
}

// WantsJSON reports whether the client asked for a JSON answer
func WantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json") ||
		c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// RequireGuard lets the request through only when the browser has a session on guard
func RequireGuard(sessions *auth.Manager, guard auth.Guard, loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Bind(c).Current(c.Request.Context(), guard) // Resolve the guard cookie
		if err != nil {
			// Store failure, not an authentication failure
			logrus.WithFields(logrus.Fields{
				"guard": guard,
				"error": err.Error(),
			}).Error("Session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Guests go back to the login page
		if sess == nil {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
				return
			}
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}
		c.Set(SessionKey, sess) // Store session in context
		c.Next()                // Proceed to the next handler
	}
}

// GuestOnly sends browsers already logged in on guard to redirectTo
func GuestOnly(sessions *auth.Manager, guard auth.Guard, redirectTo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Bind(c).Current(c.Request.Context(), guard)
		if err != nil {
			// Let the login page render; the login itself will surface store errors
			logrus.WithFields(logrus.Fields{
				"guard": guard,
				"error": err.Error(),
			}).Warn("Session lookup failed")
			c.Next()
			return
		}
		if sess != nil {
			c.Redirect(http.StatusFound, redirectTo) // Already authenticated
			c.Abort()
			return
		}
		c.Next()
	}
}
