package domain

// Role identifies which kind of account is logging in
type Role string

const (
	RoleAdmin    Role = "admin"    // Back office owner
	RoleEmployee Role = "employee" // Back office staff
	RoleVendor   Role = "vendor"   // Seller
	RoleCustomer Role = "customer" // Storefront customer
)

// IsAdminFamily reports whether the role logs in through the admin guard
func (r Role) IsAdminFamily() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// VendorStatus is the approval state of a vendor account
type VendorStatus string

const (
	VendorPending   VendorStatus = "pending"
	VendorApproved  VendorStatus = "approved"
	VendorSuspended VendorStatus = "suspended"
)
