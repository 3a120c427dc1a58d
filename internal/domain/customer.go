package domain

import "time"

// Customer Model
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                       // Primary key
	Name      string    `gorm:"size:191" json:"name"`                       // Display name
	Email     string    `gorm:"size:191;uniqueIndex;not null" json:"email"` // Login email
	Password  string    `gorm:"not null" json:"-"`                          // Hashed password
	IsActive  bool      `gorm:"not null" json:"is_active"`                  // Active flag, not checked at login
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the marketplace table name
func (Customer) TableName() string { return "users" }
