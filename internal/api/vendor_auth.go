package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"marketplace_auth/internal/auth"    // Guard sessions and flash
	"marketplace_auth/internal/config"  // Configuration
	"marketplace_auth/internal/service" // Login orchestrators

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Messages shown to vendors
const (
	msgVendorCredentials  = "Credentials doesnt match!"
	msgVendorLoginSuccess = "Login successful!"
	msgVendorWelcome      = "Welcome to your dashboard."
	msgVendorLoggedOut    = "Logged out successfully."
)

// VendorLoginPath is the vendor login page
const VendorLoginPath = "/vendor/auth/login"

// VendorLoginViewHandler renders the vendor login page
func VendorLoginViewHandler(flasher *auth.Flasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "vendor_login.html", gin.H{"Flash": flasher.Pull(c)})
	}
}

// VendorLoginHandler authenticates a vendor and answers in JSON
func VendorLoginHandler(svc *service.VendorLoginService, sessions *auth.Manager, flasher *auth.Flasher, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form VendorLoginForm // Bind form or JSON body to struct
		if err := c.ShouldBind(&form); err != nil {
			// If validation fails, return the first message
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationMessages(err)[0]})
			return
		}

		_, err := svc.Login(c.Request.Context(), sessions.Bind(c), service.VendorCredentials{
			Email:    form.Email,              // Vendor identity
			Password: form.Password,           // Submitted password
			Remember: form.Remember.Checked(), // Remember me
		})
		var pending *service.PendingApprovalError
		switch {
		case errors.As(err, &pending):
			// Only reachable with the right password
			c.JSON(http.StatusOK, gin.H{"status": pending.Status})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusOK, gin.H{"error": msgVendorCredentials})
		case err != nil:
			logrus.WithFields(logrus.Fields{
				"email": form.Email,  // Submitted identity
				"error": err.Error(), // Error message
			}).Error("Vendor login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		default:
			if err := flasher.Put(c, auth.Flash{Info: msgVendorWelcome}); err != nil {
				logrus.WithField("error", err.Error()).Warn("Failed to queue flash message")
			}
			c.JSON(http.StatusOK, gin.H{
				"success":       msgVendorLoginSuccess,  // Success message
				"redirectRoute": cfg.VendorDashboardURL, // Where the page should go next
			})
		}
	}
}

// VendorLogoutHandler ends the seller guard session and returns to the vendor login page
func VendorLogoutHandler(svc *service.VendorLoginService, sessions *auth.Manager, flasher *auth.Flasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context(), sessions.Bind(c)); err != nil {
			logrus.WithField("error", err.Error()).Error("Vendor logout failed")
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}
		redirectWithFlash(c, flasher, VendorLoginPath, auth.Flash{Success: msgVendorLoggedOut})
	}
}
