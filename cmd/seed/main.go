package main

import (
	"fmt" // Model names in logs

	"marketplace_auth/internal/auth"   // Password hashing
	"marketplace_auth/internal/config" // Configuration
	"marketplace_auth/internal/db"     // Database connection
	"marketplace_auth/internal/domain" // Domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// demoPassword is used for every seeded account unless DEMO_ADMIN_PASSWORD is set
const demoPassword = "12345678"

// Main entry point for seeding demo accounts
func main() {
	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	gormDB, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := gormDB.AutoMigrate(db.Models()...); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	password := cfg.DemoAdminPassword
	if password == "" {
		password = demoPassword
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		logrus.Fatalf("failed to hash password: %v", err)
	}

	adminEmail := cfg.DemoAdminEmail
	if adminEmail == "" {
		adminEmail = "admin@admin.com"
	}

	// One account per login flow, plus a vendor waiting for approval
	seed(gormDB, &domain.Admin{Name: "Admin", Email: adminEmail, Password: hash, Role: domain.RoleAdmin, Status: true}, "email = ?", adminEmail)
	seed(gormDB, &domain.Admin{Name: "Employee", Email: "employee@demo.com", Password: hash, Role: domain.RoleEmployee, Status: true}, "email = ?", "employee@demo.com")
	seed(gormDB, &domain.Vendor{FirstName: "Demo", LastName: "Vendor", Email: "vendor@demo.com", Password: hash, Status: domain.VendorApproved}, "email = ?", "vendor@demo.com")
	seed(gormDB, &domain.Vendor{FirstName: "Pending", LastName: "Vendor", Email: "pending@demo.com", Password: hash, Status: domain.VendorPending}, "email = ?", "pending@demo.com")
	seed(gormDB, &domain.Customer{Name: "Demo Customer", Email: "customer@demo.com", Password: hash, IsActive: true}, "email = ?", "customer@demo.com")

	logrus.Info("Seeding completed.")
}

// seed inserts record unless a row already matches the query
func seed(gormDB *gorm.DB, record any, query string, args ...any) {
	res := gormDB.Where(query, args...).FirstOrCreate(record)
	if res.Error != nil {
		logrus.Fatalf("failed to seed %T: %v", record, res.Error)
	}
	logrus.WithFields(logrus.Fields{
		"model":   fmt.Sprintf("%T", record),
		"match":   args,
		"created": res.RowsAffected > 0,
	}).Info("Seeded account")
}
