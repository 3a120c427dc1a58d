package domain

import "time"

// Admin Model, shared by admins and employees
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                          // Primary key
	Name      string    `gorm:"size:191" json:"name"`                          // Display name
	Email     string    `gorm:"size:191;uniqueIndex;not null" json:"email"`    // Unique login email
	Password  string    `gorm:"not null" json:"-"`                             // Hashed password
	Role      Role      `gorm:"size:32;not null;default:employee" json:"role"` // Role: admin or employee
	Status    bool      `gorm:"not null" json:"status"`                        // Active flag, set explicitly on create
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the marketplace table name
func (Admin) TableName() string { return "admins" }
