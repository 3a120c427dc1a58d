package repository

import (
	"context" // Context for queries

	"marketplace_auth/internal/domain" // Domain models

	"gorm.io/gorm" // ORM library
)

// AdminRepository reads admin family accounts. Lookups return nil, nil when nothing matches.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindByID(ctx context.Context, id uint) (*domain.Admin, error)
}

type adminRepository struct {
	db *gorm.DB // Database connection
}

// NewAdminRepository builds a GORM-backed repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return first[domain.Admin](r.db.WithContext(ctx).Where("email = ?", email)) // Look up by email
}

func (r *adminRepository) FindByID(ctx context.Context, id uint) (*domain.Admin, error) {
	return first[domain.Admin](r.db.WithContext(ctx).Where("id = ?", id)) // Look up by primary key
}
