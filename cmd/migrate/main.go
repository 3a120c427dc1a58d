package main

import (
	"marketplace_auth/internal/config" // Custom import path (Config)
	"marketplace_auth/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Create tables and unique indexes
}
