package models

// Role is the closed set of portal roles
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
	RoleDealer   Role = "DEALER"
)

// Valid reports whether the role is one of the known portal roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleDealer:
		return true
	}
	return false
}

// RedirectPath returns the landing route for the role after authentication.
// Unknown roles fail closed to the unauthorized page.
func (r Role) RedirectPath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleCustomer:
		return "/customer/dashboard"
	case RoleDealer:
		return "/dealer"
	default:
		return "/unauthorized"
	}
}

// User is the authenticated identity record held for a browser session
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}

// Session is the authenticated-identity state for one browser session.
// Token is the opaque bearer credential issued by the auth backend; it is
// empty while unauthenticated.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// IsAuthenticated reports whether the session carries a token
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// RedirectPath returns the role landing route for an authenticated session,
// or the login page otherwise
func (s *Session) RedirectPath() string {
	if !s.IsAuthenticated() || s.User == nil {
		return "/login"
	}
	return s.User.Role.RedirectPath()
}
