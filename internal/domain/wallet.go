package domain

import "time"

// VendorWallet Model, one per vendor
type VendorWallet struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`                             // Primary key
	SellerID             uint      `gorm:"uniqueIndex;not null" json:"seller_id"`            // Foreign key to Vendor
	TotalEarning         float64   `gorm:"not null;default:0" json:"total_earning"`          // Lifetime earnings
	Withdrawn            float64   `gorm:"not null;default:0" json:"withdrawn"`              // Already paid out
	CommissionGiven      float64   `gorm:"not null;default:0" json:"commission_given"`       // Commission paid to the platform
	PendingWithdraw      float64   `gorm:"not null;default:0" json:"pending_withdraw"`       // Requested, not yet paid
	DeliveryChargeEarned float64   `gorm:"not null;default:0" json:"delivery_charge_earned"` // Delivery fees earned
	CollectedCash        float64   `gorm:"not null;default:0" json:"collected_cash"`         // Cash on delivery collected
	TotalTaxCollected    float64   `gorm:"not null;default:0" json:"total_tax_collected"`    // Tax collected
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TableName keeps the marketplace table name
func (VendorWallet) TableName() string { return "seller_wallets" }

// NewVendorWallet returns the initial wallet of a vendor with every balance at zero
func NewVendorWallet(vendorID uint) *VendorWallet {
	return &VendorWallet{SellerID: vendorID}
}
