package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For session lifetimes

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort    string // Application port
	DBUser     string // Database user
	DBPassword string // Database password
	DBHost     string // Database host
	DBPort     string // Database port
	DBName     string // Database name
	RedisAddr  string // Redis server address
	RedisPass  string // Redis password
	RedisDB    int    // Redis database number
	IsProd     bool   // Is production environment

	SessionDriver    string        // Session backend: redis or memory
	SessionSecret    string        // Key used to sign session and flash cookies
	SessionLifetime  time.Duration // Lifetime of a plain session
	RememberLifetime time.Duration // Lifetime of a "remember me" session
	CookieSecure     bool          // Send cookies over HTTPS only

	AdminLoginURL      string // Slug that opens the admin login page
	EmployeeLoginURL   string // Slug that opens the employee login page
	AdminDashboardURL  string // Redirect target after an admin family login
	VendorDashboardURL string // Redirect target after a vendor login
	HomeURL            string // Redirect target after a customer login

	AppMode           string // "demo" shows demo credentials on the admin login page
	DemoAdminEmail    string // Demo admin email
	DemoAdminPassword string // Demo admin password
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:    getEnv("APP_PORT", "8080"),             // Application port
		DBUser:     os.Getenv("DB_USER"),                   // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),               // Database password
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),         // Database host
		DBPort:     getEnv("DB_PORT", "3306"),              // Database port
		DBName:     os.Getenv("DB_NAME"),                   // Database name
		RedisAddr:  getEnv("REDIS_ADDR", "127.0.0.1:6379"), // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),                // Redis password
		RedisDB:    getEnvInt("REDIS_DB", 0),               // Redis database number
		IsProd:     os.Getenv("IS_PROD") == "true",         // Is production environment

		SessionDriver:    getEnv("SESSION_DRIVER", "redis"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		SessionLifetime:  time.Duration(getEnvInt("SESSION_LIFETIME", 120)) * time.Minute,
		RememberLifetime: time.Duration(getEnvInt("REMEMBER_LIFETIME", 43200)) * time.Minute,
		CookieSecure:     os.Getenv("COOKIE_SECURE") == "true",

		AdminLoginURL:      getEnv("ADMIN_LOGIN_URL", "admin"),
		EmployeeLoginURL:   getEnv("EMPLOYEE_LOGIN_URL", "employee"),
		AdminDashboardURL:  getEnv("ADMIN_DASHBOARD_URL", "/admin/dashboard"),
		VendorDashboardURL: getEnv("VENDOR_DASHBOARD_URL", "/vendor/dashboard"),
		HomeURL:            getEnv("HOME_URL", "/"),

		AppMode:           getEnv("APP_MODE", "live"),
		DemoAdminEmail:    os.Getenv("DEMO_ADMIN_EMAIL"),
		DemoAdminPassword: os.Getenv("DEMO_ADMIN_PASSWORD"),
	}
}

// DSN builds the MySQL data source name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// IsDemo reports whether the app runs in demo mode
func (c *Config) IsDemo() bool {
	return c.AppMode == "demo"
}

// AdminLoginPath is where the admin family is sent after logout
func (c *Config) AdminLoginPath() string {
	return "/login/" + c.AdminLoginURL
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
