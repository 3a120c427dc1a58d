package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"marketplace_auth/internal/auth"    // Guard sessions and flash
	"marketplace_auth/internal/config"  // Configuration
	"marketplace_auth/internal/domain"  // Roles
	"marketplace_auth/internal/service" // Login orchestrators

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Messages shown to the admin family
const (
	msgAdminLoginFailed = "credentials does not match or your account has been suspended"
	msgLoggedOut        = "logged out successfully"
)

// AdminLoginViewHandler renders the admin or employee login page picked by the URL slug
func AdminLoginViewHandler(svc *service.AdminLoginService, flasher *auth.Flasher, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := svc.ResolveLoginView(c.Param("slug")) // Reverse lookup of the slug
		if err != nil {
			// Unknown slugs do not reveal that a login page exists
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"Role":         role,                  // Hidden role field
			"Flash":        flasher.Pull(c),       // Errors and old input from the last attempt
			"Demo":         cfg.IsDemo(),          // Show demo credentials
			"DemoEmail":    cfg.DemoAdminEmail,    // Demo admin email
			"DemoPassword": cfg.DemoAdminPassword, // Demo admin password
		})
	}
}

// AdminLoginHandler authenticates an admin or employee and redirects to the dashboard
func AdminLoginHandler(svc *service.AdminLoginService, sessions *auth.Manager, flasher *auth.Flasher, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form AdminLoginForm // Bind form to struct
		bindErr := c.ShouldBind(&form)
		backURL := "/login/" + svc.SlugFor(domain.Role(form.Role)) // Where failures go back to
		old := map[string]string{"email": form.Email}              // Input kept for the next render
		if form.Remember.Checked() {
			old["remember"] = "on"
		}
		// Validate request
		if bindErr != nil {
			redirectWithFlash(c, flasher, backURL, auth.Flash{Errors: validationMessages(bindErr), Old: old})
			return
		}

		_, err := svc.Login(c.Request.Context(), sessions.Bind(c), service.AdminCredentials{
			Email:    form.Email,             // Submitted email
			Password: form.Password,          // Submitted password
			Role:     domain.Role(form.Role), // Submitted role
			Remember: form.Remember.Checked(),
		})
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			// One message for every failure reason
			redirectWithFlash(c, flasher, backURL, auth.Flash{Errors: []string{msgAdminLoginFailed}, Old: old})
		case err != nil:
			logrus.WithFields(logrus.Fields{
				"email": form.Email,  // Submitted email
				"error": err.Error(), // Error message
			}).Error("Admin login failed")
			c.String(http.StatusInternalServerError, "Internal server error")
		default:
			c.Redirect(http.StatusFound, cfg.AdminDashboardURL) // Logged in
		}
	}
}

// AdminLogoutHandler ends the admin guard session and returns to the admin login page
func AdminLogoutHandler(svc *service.AdminLoginService, sessions *auth.Manager, flasher *auth.Flasher, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context(), sessions.Bind(c)); err != nil {
			logrus.WithField("error", err.Error()).Error("Admin logout failed")
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}
		redirectWithFlash(c, flasher, cfg.AdminLoginPath(), auth.Flash{Success: msgLoggedOut})
	}
}

// redirectWithFlash queues msg and redirects to url
func redirectWithFlash(c *gin.Context, flasher *auth.Flasher, url string, msg auth.Flash) {
	if err := flasher.Put(c, msg); err != nil {
		logrus.WithField("error", err.Error()).Warn("Failed to queue flash message") // Redirect anyway
	}
	c.Redirect(http.StatusFound, url)
}
