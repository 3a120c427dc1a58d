package service

import (
	"context" // Context for store operations
	"fmt"     // Error wrapping

	"marketplace_auth/internal/auth"       // Guard sessions
	"marketplace_auth/internal/domain"     // Roles
	"marketplace_auth/internal/metrics"    // Login counters
	"marketplace_auth/internal/repository" // Admin store

	"github.com/sirupsen/logrus" // Logging library
)

// LoginSlugs maps the admin family roles to the URL slug of their login page
type LoginSlugs map[domain.Role]string

// AdminCredentials is a submitted admin family login form
type AdminCredentials struct {
	Email    string      // Submitted email
	Password string      // Submitted password
	Role     domain.Role // Hidden role field
	Remember bool        // Remember me
}

// AdminLoginService logs admins and employees in and out of the admin guard
type AdminLoginService struct {
	admins   repository.AdminRepository // Admin family accounts
	verifier auth.PasswordVerifier      // Password check
	slugs    LoginSlugs                 // Login page per role
	metrics  *metrics.Metrics           // Optional counters
}

// NewAdminLoginService creates the admin family orchestrator
func NewAdminLoginService(admins repository.AdminRepository, verifier auth.PasswordVerifier, slugs LoginSlugs, m *metrics.Metrics) *AdminLoginService {
	return &AdminLoginService{admins: admins, verifier: verifier, slugs: slugs, metrics: m}
}

// ResolveLoginView maps a login slug back to its role
func (s *AdminLoginService) ResolveLoginView(slug string) (domain.Role, error) {
	if slug == "" {
		return "", ErrLoginViewNotFound // Empty slug never matches
	}
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleEmployee} {
		if configured, ok := s.slugs[role]; ok && configured == slug {
			return role, nil
		}
	}
	return "", ErrLoginViewNotFound
}

// SlugFor returns the login slug of role, falling back to the admin slug
func (s *AdminLoginService) SlugFor(role domain.Role) string {
	if slug, ok := s.slugs[role]; ok && role.IsAdminFamily() {
		return slug
	}
	return s.slugs[domain.RoleAdmin]
}

// Login authenticates an admin or employee and opens an admin guard session.
// Every rejection is ErrInvalidCredentials so the caller cannot tell a
// missing account from a suspended one or a wrong password.
func (s *AdminLoginService) Login(ctx context.Context, guards auth.Guards, in AdminCredentials) (*auth.Session, error) {
	admin, err := s.admins.FindByEmail(ctx, in.Email) // Fetch admin by email
	if err != nil {
		s.metrics.ObserveLogin(string(auth.GuardAdmin), metrics.OutcomeError)
		return nil, fmt.Errorf("find admin: %w", err)
	}

	// Account, role, status and password must all check out
	if admin == nil || !in.Role.IsAdminFamily() || !admin.Status || !s.verifier.Verify(in.Password, admin.Password) {
		s.metrics.ObserveLogin(string(auth.GuardAdmin), metrics.OutcomeInvalid)
		return nil, ErrInvalidCredentials
	}

	role := admin.Role // The stored role wins over the submitted one
	if !role.IsAdminFamily() {
		role = in.Role
	}
	sess, err := guards.Establish(ctx, auth.GuardAdmin, admin.ID, role, in.Remember) // Open the admin session
	if err != nil {
		s.metrics.ObserveLogin(string(auth.GuardAdmin), metrics.OutcomeError)
		return nil, fmt.Errorf("establish admin session: %w", err)
	}

	s.metrics.ObserveLogin(string(auth.GuardAdmin), metrics.OutcomeSuccess)
	logrus.WithFields(logrus.Fields{
		"admin_id": admin.ID,    // Admin ID
		"role":     role,        // Session role
		"remember": in.Remember, // Remember me
	}).Info("Admin logged in")
	return sess, nil
}

// Logout clears the admin guard only
func (s *AdminLoginService) Logout(ctx context.Context, guards auth.Guards) error {
	if err := guards.Clear(ctx, auth.GuardAdmin); err != nil {
		return fmt.Errorf("clear admin session: %w", err)
	}
	s.metrics.ObserveLogout(string(auth.GuardAdmin)) // Count the logout
	return nil
}
