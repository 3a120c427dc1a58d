package domain

import "time"

// Vendor Model
type Vendor struct {
	ID        uint         `gorm:"primaryKey" json:"id"`                           // Primary key
	FirstName string       `gorm:"column:f_name;size:191" json:"f_name"`           // First name
	LastName  string       `gorm:"column:l_name;size:191" json:"l_name"`           // Last name
	Email     string       `gorm:"size:191;uniqueIndex;not null" json:"email"`     // Login identity
	Password  string       `gorm:"not null" json:"-"`                              // Hashed password
	Status    VendorStatus `gorm:"size:32;not null;default:pending" json:"status"` // pending, approved, suspended
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// TableName keeps the marketplace table name
func (Vendor) TableName() string { return "sellers" }

// IsApproved reports whether the vendor may sign in
func (v *Vendor) IsApproved() bool {
	return v.Status == VendorApproved
}
