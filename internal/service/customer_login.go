package service

import (
	"context" // Context for store operations
	"fmt"     // Error wrapping

	"marketplace_auth/internal/auth"       // Guard sessions
	"marketplace_auth/internal/domain"     // Roles
	"marketplace_auth/internal/metrics"    // Login counters
	"marketplace_auth/internal/repository" // Customer store

	"github.com/sirupsen/logrus" // Logging library
)

// CustomerCredentials is a submitted storefront login form
type CustomerCredentials struct {
	Email    string // Customer email
	Password string // Submitted password
	Remember bool   // Remember me
}

// CustomerLoginService is the plain email/password flow of the customer guard
type CustomerLoginService struct {
	customers repository.CustomerRepository // Customer accounts
	verifier  auth.PasswordVerifier         // Password check
	metrics   *metrics.Metrics              // Optional counters
}

// NewCustomerLoginService creates the customer orchestrator
func NewCustomerLoginService(customers repository.CustomerRepository, verifier auth.PasswordVerifier, m *metrics.Metrics) *CustomerLoginService {
	return &CustomerLoginService{customers: customers, verifier: verifier, metrics: m}
}

// Login authenticates a customer and opens a customer guard session
func (s *CustomerLoginService) Login(ctx context.Context, guards auth.Guards, in CustomerCredentials) (*auth.Session, error) {
	customer, err := s.customers.FindByEmail(ctx, in.Email) // Fetch customer by email
	if err != nil {
		s.metrics.ObserveLogin(string(auth.GuardCustomer), metrics.OutcomeError)
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil || !s.verifier.Verify(in.Password, customer.Password) {
		s.metrics.ObserveLogin(string(auth.GuardCustomer), metrics.OutcomeInvalid)
		return nil, ErrInvalidCredentials
	}

	sess, err := guards.Establish(ctx, auth.GuardCustomer, customer.ID, domain.RoleCustomer, in.Remember) // Open the customer session
	if err != nil {
		s.metrics.ObserveLogin(string(auth.GuardCustomer), metrics.OutcomeError)
		return nil, fmt.Errorf("establish customer session: %w", err)
	}

	s.metrics.ObserveLogin(string(auth.GuardCustomer), metrics.OutcomeSuccess)
	logrus.WithField("customer_id", customer.ID).Info("Customer logged in") // Log successful login
	return sess, nil
}

// Logout clears the customer guard only
func (s *CustomerLoginService) Logout(ctx context.Context, guards auth.Guards) error {
	if err := guards.Clear(ctx, auth.GuardCustomer); err != nil {
		return fmt.Errorf("clear customer session: %w", err)
	}
	s.metrics.ObserveLogout(string(auth.GuardCustomer)) // Count the logout
	return nil
}
