package auth

import "errors"

// ErrLoginRequired is returned by operations that need a signed-in customer.
// Handlers answer it with a login prompt rather than a hard failure.
var ErrLoginRequired = errors.New("login required")

// ErrInvalidToken is returned by a ProfileProvider when the token is rejected.
var ErrInvalidToken = errors.New("invalid or expired token")

// Profile is the customer profile owned by the storefront auth service.
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// Principal identifies the caller of an operation. The zero value is an anonymous visitor.
type Principal struct {
	// Token is the bearer token forwarded to the storefront API.
	Token string
	// Profile is the resolved customer profile, nil for anonymous callers.
	Profile *Profile
}

// Authenticated reports whether the principal carries a resolved profile.
func (p Principal) Authenticated() bool {
	return p.Token != "" && p.Profile != nil && p.Profile.ID != ""
}

// UserID returns the profile id or "" for anonymous callers.
func (p Principal) UserID() string {
	if p.Profile == nil {
		return ""
	}
	return p.Profile.ID
}

// Require returns ErrLoginRequired for anonymous principals.
func (p Principal) Require() error {
	if !p.Authenticated() {
		return ErrLoginRequired
	}
	return nil
}
