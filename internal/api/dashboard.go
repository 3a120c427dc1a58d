package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"marketplace_auth/internal/auth"       // Guard sessions and flash
	"marketplace_auth/internal/domain"     // Importing domain models
	"marketplace_auth/internal/middleware" // Session from context
	"marketplace_auth/internal/repository" // Wallet lookups
	"marketplace_auth/internal/utils"      // Redis helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

const walletCacheTTL = 60 * time.Second

// AdminDashboardHandler is the landing page of the admin guard
func AdminDashboardHandler(flasher *auth.Flasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c) // Set by RequireGuard
		c.JSON(http.StatusOK, gin.H{
			"guard":      sess.Guard,      // Always admin here
			"account_id": sess.AccountID,  // Logged in admin
			"role":       sess.Role,       // admin or employee
			"flash":      flasher.Pull(c), // Pending notices
		})
	}
}

// VendorDashboardHandler is the landing page of the seller guard, with the vendor's wallet
func VendorDashboardHandler(flasher *auth.Flasher, wallets repository.WalletRepository, rdb redis.Cmdable) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)                                          // Set by RequireGuard
		ctx := c.Request.Context()                                                    // Context for store operations
		cacheKey := "wallet:vendor:" + strconv.FormatUint(uint64(sess.AccountID), 10) // Cache key for wallet
		var wallet domain.VendorWallet                                                // Wallet struct to hold data
		cached := false
		// Try the cache first when Redis is configured
		if rdb != nil {
			found, err := utils.GetJSON(ctx, rdb, cacheKey, &wallet)
			cached = err == nil && found
		}
		if !cached {
			w, err := wallets.FindByVendorID(ctx, sess.AccountID) // Fetch from DB
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"vendor_id": sess.AccountID, // Vendor ID
					"error":     err.Error(),    // Error message
				}).Error("Wallet lookup failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			if w == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"}) // Provisioned at login, should not happen
				return
			}
			wallet = *w
			if rdb != nil {
				_ = utils.SetJSON(ctx, rdb, cacheKey, wallet, walletCacheTTL) // Cache the wallet for 60 seconds
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"guard":      sess.Guard,      // Always seller here
			"account_id": sess.AccountID,  // Logged in vendor
			"wallet":     wallet,          // Vendor wallet
			"cached":     cached,          // Whether the wallet came from cache
			"flash":      flasher.Pull(c), // Pending notices
		})
	}
}

// HomeHandler is the storefront home page; it only reports the customer guard state
func HomeHandler(sessions *auth.Manager, flasher *auth.Flasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Bind(c).Current(c.Request.Context(), auth.GuardCustomer)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Session lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		resp := gin.H{"authenticated": sess != nil, "flash": flasher.Pull(c)}
		if sess != nil {
			resp["account_id"] = sess.AccountID // Logged in customer
		}
		c.JSON(http.StatusOK, resp)
	}
}
