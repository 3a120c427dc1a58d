package api

import (
	"fmt"      // Error wrapping
	"net/http" // HTTP status codes

	"marketplace_auth/internal/auth"       // Guard sessions and flash
	"marketplace_auth/internal/config"     // Configuration
	"marketplace_auth/internal/middleware" // Guard middleware
	"marketplace_auth/internal/repository" // Stores read by middleware and dashboards
	"marketplace_auth/internal/service"    // Login orchestrators

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Dependencies are the collaborators the routes are built from
type Dependencies struct {
	Config    *config.Config
	Sessions  *auth.Manager
	Flash     *auth.Flasher
	Admins    *service.AdminLoginService
	Vendors   *service.VendorLoginService
	Customers *service.CustomerLoginService
	AdminRepo repository.AdminRepository  // Re-read by ActiveAdminOnly
	Wallets   repository.WalletRepository // Shown on the vendor dashboard
	Redis     redis.Cmdable               // Optional wallet cache
	Metrics   http.Handler                // Optional /metrics handler
}

// RegisterRoutes wires every route of the service on r
func RegisterRoutes(r *gin.Engine, d Dependencies) error {
	if err := RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}
	tmpl, err := Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	cfg := d.Config
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics))
	}

	// Admin family routes
	adminGuest := r.Group("", middleware.GuestOnly(d.Sessions, auth.GuardAdmin, cfg.AdminDashboardURL))
	adminGuest.GET("/login/:slug", AdminLoginViewHandler(d.Admins, d.Flash, cfg))    // Login page per role slug
	adminGuest.POST("/login", AdminLoginHandler(d.Admins, d.Sessions, d.Flash, cfg)) // Login endpoint
	r.GET("/logout", AdminLogoutHandler(d.Admins, d.Sessions, d.Flash, cfg))         // Logout endpoint

	// Admin area (protected by the admin guard, active accounts only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(
		middleware.RequireGuard(d.Sessions, auth.GuardAdmin, cfg.AdminLoginPath()),
		middleware.ActiveAdminOnly(d.Sessions, d.AdminRepo, cfg.AdminLoginPath()),
	)
	adminGroup.GET("/dashboard", AdminDashboardHandler(d.Flash))

	// Vendor routes
	vendorAuth := r.Group("/vendor/auth")
	vendorGuest := vendorAuth.Group("", middleware.GuestOnly(d.Sessions, auth.GuardSeller, cfg.VendorDashboardURL))
	vendorGuest.GET("/login", VendorLoginViewHandler(d.Flash))
	vendorGuest.POST("/login", VendorLoginHandler(d.Vendors, d.Sessions, d.Flash, cfg))
	vendorAuth.GET("/logout", VendorLogoutHandler(d.Vendors, d.Sessions, d.Flash))
	r.GET("/vendor/dashboard",
		middleware.RequireGuard(d.Sessions, auth.GuardSeller, VendorLoginPath),
		VendorDashboardHandler(d.Flash, d.Wallets, d.Redis),
	)

	// Customer routes
	customerAuth := r.Group("/customer/auth")
	customerGuest := customerAuth.Group("", middleware.GuestOnly(d.Sessions, auth.GuardCustomer, cfg.HomeURL))
	customerGuest.GET("/login", CustomerLoginViewHandler(d.Flash))
	customerGuest.POST("/login", CustomerLoginHandler(d.Customers, d.Sessions, d.Flash, cfg))
	customerAuth.GET("/logout", CustomerLogoutHandler(d.Customers, d.Sessions))
	customerAuth.POST("/logout", CustomerLogoutHandler(d.Customers, d.Sessions))
	r.GET("/", HomeHandler(d.Sessions, d.Flash))

	return nil
}
