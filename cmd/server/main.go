package main

import (
	"context" // context package is needed for Redis operations

	"marketplace_auth/internal/api"        // Custom package for API handlers
	"marketplace_auth/internal/auth"       // Guard sessions and flash
	"marketplace_auth/internal/config"     // Custom package for configuration
	"marketplace_auth/internal/db"         // Database connection
	"marketplace_auth/internal/domain"     // Roles
	"marketplace_auth/internal/metrics"    // Prometheus counters
	"marketplace_auth/internal/repository" // GORM repositories
	"marketplace_auth/internal/service"    // Login orchestrators

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if cfg.SessionSecret == "" {
		logrus.Fatal("SESSION_SECRET must be set") // Cookies cannot be signed without it
	}

	// Connect to the database
	gormDB, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Pick the session backend
	var store auth.SessionStore
	var rdb redis.Cmdable
	switch cfg.SessionDriver {
	case "memory":
		logrus.Warn("Using in-memory sessions; sessions are lost on restart")
		store = auth.NewMemorySessionStore()
	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		store = auth.NewRedisSessionStore(redisClient)
		rdb = redisClient
	}

	sessions := auth.NewManager(store, auth.ManagerConfig{
		Secret:           cfg.SessionSecret,    // Signs guard cookies
		Lifetime:         cfg.SessionLifetime,  // Plain session lifetime
		RememberLifetime: cfg.RememberLifetime, // Remember me lifetime
		Secure:           cfg.CookieSecure,     // HTTPS only cookies
	})
	flasher := auth.NewFlasher(cfg.SessionSecret, cfg.CookieSecure)
	registry, m := metrics.NewRegistry()

	// Repositories and orchestrators
	adminRepo := repository.NewAdminRepository(gormDB)
	walletRepo := repository.NewWalletRepository(gormDB)
	verifier := auth.BcryptVerifier{}
	slugs := service.LoginSlugs{
		domain.RoleAdmin:    cfg.AdminLoginURL,    // Admin login slug
		domain.RoleEmployee: cfg.EmployeeLoginURL, // Employee login slug
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	err = api.RegisterRoutes(r, api.Dependencies{
		Config:    cfg,
		Sessions:  sessions,
		Flash:     flasher,
		Admins:    service.NewAdminLoginService(adminRepo, verifier, slugs, m),
		Vendors:   service.NewVendorLoginService(repository.NewVendorRepository(gormDB), walletRepo, verifier, m),
		Customers: service.NewCustomerLoginService(repository.NewCustomerRepository(gormDB), verifier, m),
		AdminRepo: adminRepo,
		Wallets:   walletRepo,
		Redis:     rdb,
		Metrics:   metrics.Handler(registry),
	})
	if err != nil {
		logrus.Fatalf("failed to register routes: %v", err)
	}

	logrus.Info("Server running on " + cfg.AppPort)  // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil { // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}
