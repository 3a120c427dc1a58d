package service

import (
	"errors" // Sentinel errors
	"fmt"    // Error formatting

	"marketplace_auth/internal/domain" // Vendor status
)

var (
	// ErrLoginViewNotFound is returned when a login slug matches no configured role
	ErrLoginViewNotFound = errors.New("login view not found")
	// ErrInvalidCredentials covers every authentication failure the client is not told apart
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PendingApprovalError is returned to a vendor whose password matched but
// whose account is not approved
type PendingApprovalError struct {
	Status domain.VendorStatus // Current approval status
}

func (e *PendingApprovalError) Error() string {
	return fmt.Sprintf("vendor account is %s", e.Status)
}
