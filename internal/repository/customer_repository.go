package repository

import (
	"context" // Context for queries

	"marketplace_auth/internal/domain" // Domain models

	"gorm.io/gorm" // ORM library
)

// CustomerRepository reads storefront customers. Lookups return nil, nil when nothing matches.
type CustomerRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindByID(ctx context.Context, id uint) (*domain.Customer, error)
}

type customerRepository struct {
	db *gorm.DB // Database connection
}

// NewCustomerRepository builds a GORM-backed repository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return first[domain.Customer](r.db.WithContext(ctx).Where("email = ?", email)) // Look up by email
}

func (r *customerRepository) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	return first[domain.Customer](r.db.WithContext(ctx).Where("id = ?", id)) // Look up by primary key
}
