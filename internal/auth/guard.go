// Package auth keeps one independent login session per guard (admin, seller,
// customer) for a browser, plus one-shot flash messages.
package auth

// Guard names an authentication namespace. Sessions under one guard never
// touch the sessions of another
type Guard string

const (
	GuardAdmin    Guard = "admin"    // Admins and employees
	GuardSeller   Guard = "seller"   // Vendors
	GuardCustomer Guard = "customer" // Storefront customers
)

// CookieName is the browser cookie that carries the guard's session token
func (g Guard) CookieName() string {
	return string(g) + "_session"
}

// Valid reports whether g is one of the known guards
func (g Guard) Valid() bool {
	switch g {
	case GuardAdmin, GuardSeller, GuardCustomer:
		return true
	}
	return false
}

// contextKey is where the request caches the guard's resolved session
func (g Guard) contextKey() string {
	return "auth.session." + string(g)
}
