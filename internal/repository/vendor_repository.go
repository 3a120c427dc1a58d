package repository

import (
	"context" // Context for queries

	"marketplace_auth/internal/domain" // Domain models

	"gorm.io/gorm" // ORM library
)

// VendorRepository reads vendor accounts by their login identity. Lookups return nil, nil when nothing matches.
type VendorRepository interface {
	FindByIdentity(ctx context.Context, identity string) (*domain.Vendor, error)
	FindByID(ctx context.Context, id uint) (*domain.Vendor, error)
}

type vendorRepository struct {
	db *gorm.DB // Database connection
}

// NewVendorRepository builds a GORM-backed repository
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) FindByIdentity(ctx context.Context, identity string) (*domain.Vendor, error) {
	return first[domain.Vendor](r.db.WithContext(ctx).Where("email = ?", identity)) // Look up by email
}

func (r *vendorRepository) FindByID(ctx context.Context, id uint) (*domain.Vendor, error) {
	return first[domain.Vendor](r.db.WithContext(ctx).Where("id = ?", id)) // Look up by primary key
}
