package middleware

import (
	"net/http" // HTTP status codes

	"marketplace_auth/internal/auth"       // Guard sessions
	"marketplace_auth/internal/repository" // Admin lookups

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ActiveAdminOnly re-reads the admin on each request and ends the admin
// session of accounts that were deactivated after logging in
func ActiveAdminOnly(sessions *auth.Manager, admins repository.AdminRepository, loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c) // Set by RequireGuard
		// Check the session exists in context
		if sess == nil || sess.Guard != auth.GuardAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}
		admin, err := admins.FindByID(c.Request.Context(), sess.AccountID) // Fetch admin from database
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"admin_id": sess.AccountID,
				"error":    err.Error(),
			}).Error("Admin lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Missing or suspended accounts lose their session
		if admin == nil || !admin.Status {
			if err := sessions.Bind(c).Clear(c.Request.Context(), auth.GuardAdmin); err != nil {
				logrus.WithField("error", err.Error()).Error("Failed to clear admin session")
			}
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account suspended"})
				return
			}
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}
		c.Next() // Active admin, proceed
	}
}
