package models

// Session identifies the logged-in user. It is derived from a User and
// deliberately has no room for the password hash.
type Session struct {
	ID    int64
	Name  string
	Email string
	Role  Role
}

// NewSession projects the identity fields of u.
func NewSession(u User) Session {
	return Session{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  ParseRole(string(u.Role)),
	}
}

// Credentials is the payload of the login form.
type Credentials struct {
	Email    string
	Password string
}
