package repository

import (
	"context" // Context for queries

	"marketplace_auth/internal/domain" // Domain models

	"gorm.io/gorm"        // ORM library
	"gorm.io/gorm/clause" // ON CONFLICT clause
)

// WalletRepository stores vendor wallets
type WalletRepository interface {
	FindByVendorID(ctx context.Context, vendorID uint) (*domain.VendorWallet, error)
	// CreateIfAbsent inserts the wallet unless one already exists for its vendor.
	// It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, wallet *domain.VendorWallet) (bool, error)
}

type walletRepository struct {
	db *gorm.DB // Database connection
}

// NewWalletRepository builds a GORM-backed repository
func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) FindByVendorID(ctx context.Context, vendorID uint) (*domain.VendorWallet, error) {
	return first[domain.VendorWallet](r.db.WithContext(ctx).Where("seller_id = ?", vendorID)) // Find wallet by seller
}

// CreateIfAbsent relies on the unique seller_id index, so two concurrent
// first logins cannot both insert
func (r *walletRepository) CreateIfAbsent(ctx context.Context, wallet *domain.VendorWallet) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(wallet) // Insert unless the seller has one
	if res.Error != nil {
		return false, res.Error // Return error if insert fails
	}
	return res.RowsAffected > 0, nil // Zero rows means another login won
}
