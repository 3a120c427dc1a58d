package service

import (
	"context" // Context for store operations
	"fmt"     // Error wrapping

	"marketplace_auth/internal/auth"       // Guard sessions
	"marketplace_auth/internal/domain"     // Domain models
	"marketplace_auth/internal/metrics"    // Login counters
	"marketplace_auth/internal/repository" // Vendor and wallet stores

	"github.com/sirupsen/logrus" // Logging library
)

// VendorCredentials is a submitted vendor login form
type VendorCredentials struct {
	Email    string // Vendor identity
	Password string // Submitted password
	Remember bool   // Remember me
}

// VendorLoginService logs vendors into the seller guard and provisions their
// wallet on first login
type VendorLoginService struct {
	vendors  repository.VendorRepository // Vendor accounts
	wallets  repository.WalletRepository // Vendor wallets
	verifier auth.PasswordVerifier       // Password check
	metrics  *metrics.Metrics            // Optional counters
}

// NewVendorLoginService creates the vendor orchestrator
func NewVendorLoginService(vendors repository.VendorRepository, wallets repository.WalletRepository, verifier auth.PasswordVerifier, m *metrics.Metrics) *VendorLoginService {
	return &VendorLoginService{vendors: vendors, wallets: wallets, verifier: verifier, metrics: m}
}

// Login authenticates a vendor.
//
// The password is checked before the approval status: a wrong password is
// always ErrInvalidCredentials, and only a correct password on an unapproved
// account yields *PendingApprovalError. A login whose wallet cannot be
// provisioned leaves no session behind.
func (s *VendorLoginService) Login(ctx context.Context, guards auth.Guards, in VendorCredentials) (*auth.Session, error) {
	vendor, err := s.vendors.FindByIdentity(ctx, in.Email) // Fetch vendor by identity
	if err != nil {
		s.metrics.ObserveLogin(string(auth.GuardSeller), metrics.OutcomeError)
		return nil, fmt.Errorf("find vendor: %w", err)
	}
	if vendor == nil {
		s.metrics.ObserveLogin(string(auth.GuardSeller), metrics.OutcomeInvalid)
		return nil, ErrInvalidCredentials
	}

	passwordOK := s.verifier.Verify(in.Password, vendor.Password) // Compare password
	// Status is only disclosed to someone who knows the password
	if passwordOK && !vendor.IsApproved() {
		s.metrics.ObserveLogin(string(auth.GuardSeller), metrics.OutcomePending)
		return nil, &PendingApprovalError{Status: vendor.Status}
	}
	if !passwordOK {
		s.metrics.ObserveLogin(string(auth.GuardSeller), metrics.OutcomeInvalid)
		return nil, ErrInvalidCredentials
	}

	sess, err := guards.Establish(ctx, auth.GuardSeller, vendor.ID, domain.RoleVendor, in.Remember) // Open the seller session
	if err != nil {
		s.metrics.ObserveLogin(string(auth.GuardSeller), metrics.OutcomeError)
		return nil, fmt.Errorf("establish vendor session: %w", err)
	}

	if _, err := s.EnsureWallet(ctx, sess.AccountID); err != nil {
		s.metrics.ObserveLogin(string(auth.GuardSeller), metrics.OutcomeError)
		// Without a wallet the dashboard is unusable, so the session goes too
		if clearErr := guards.Clear(ctx, auth.GuardSeller); clearErr != nil {
			logrus.WithFields(logrus.Fields{
				"vendor_id": vendor.ID,        // Vendor ID
				"error":     clearErr.Error(), // Error message
			}).Error("Failed to clear vendor session")
		}
		return nil, err
	}

	s.metrics.ObserveLogin(string(auth.GuardSeller), metrics.OutcomeSuccess)
	logrus.WithFields(logrus.Fields{
		"vendor_id": vendor.ID,   // Vendor ID
		"remember":  in.Remember, // Remember me
	}).Info("Vendor logged in")
	return sess, nil
}

// EnsureWallet creates the vendor's wallet with zero balances unless it
// already exists. It reports whether a wallet was created.
func (s *VendorLoginService) EnsureWallet(ctx context.Context, vendorID uint) (bool, error) {
	existing, err := s.wallets.FindByVendorID(ctx, vendorID) // Check for an existing wallet
	if err != nil {
		return false, fmt.Errorf("find vendor wallet: %w", err)
	}
	if existing != nil {
		return false, nil // Already provisioned
	}
	// The plain check above is only a shortcut; CreateIfAbsent is what keeps it to one wallet
	created, err := s.wallets.CreateIfAbsent(ctx, domain.NewVendorWallet(vendorID))
	if err != nil {
		return false, fmt.Errorf("create vendor wallet: %w", err)
	}
	if created {
		s.metrics.ObserveWalletProvisioned()
		logrus.WithFields(logrus.Fields{
			"vendor_id": vendorID,        // Vendor ID
			"type":      "create_wallet", // Event type
		}).Info("Vendor wallet created")
	}
	return created, nil
}

// Logout clears the seller guard only
func (s *VendorLoginService) Logout(ctx context.Context, guards auth.Guards) error {
	if err := guards.Clear(ctx, auth.GuardSeller); err != nil {
		return fmt.Errorf("clear vendor session: %w", err)
	}
	s.metrics.ObserveLogout(string(auth.GuardSeller)) // Count the logout
	return nil
}
