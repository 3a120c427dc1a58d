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

const msgCustomerLoginFailed = "These credentials do not match our records."

// CustomerLoginPath is the storefront login page
const CustomerLoginPath = "/customer/auth/login"

// CustomerLoginViewHandler renders the storefront login page
func CustomerLoginViewHandler(flasher *auth.Flasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "customer_login.html", gin.H{"Flash": flasher.Pull(c)})
	}
}

// CustomerLoginHandler authenticates a customer and redirects home
func CustomerLoginHandler(svc *service.CustomerLoginService, sessions *auth.Manager, flasher *auth.Flasher, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form CustomerLoginForm // Bind form to struct
		bindErr := c.ShouldBind(&form)
		old := map[string]string{"email": form.Email} // Input kept for the next render
		if form.Remember.Checked() {
			old["remember"] = "on"
		}
		if bindErr != nil {
			redirectWithFlash(c, flasher, CustomerLoginPath, auth.Flash{Errors: validationMessages(bindErr), Old: old})
			return
		}

		_, err := svc.Login(c.Request.Context(), sessions.Bind(c), service.CustomerCredentials{
			Email:    form.Email,
			Password: form.Password,
			Remember: form.Remember.Checked(),
		})
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			redirectWithFlash(c, flasher, CustomerLoginPath, auth.Flash{Errors: []string{msgCustomerLoginFailed}, Old: old})
		case err != nil:
			logrus.WithField("error", err.Error()).Error("Customer login failed")
			c.String(http.StatusInternalServerError, "Internal server error")
		default:
			c.Redirect(http.StatusFound, cfg.HomeURL) // Logged in
		}
	}
}

// CustomerLogoutHandler ends the customer guard session
func CustomerLogoutHandler(svc *service.CustomerLoginService, sessions *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context(), sessions.Bind(c)); err != nil {
			logrus.WithField("error", err.Error()).Error("Customer logout failed")
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}
