package models

import "strings"

// User is a record of the "users" table of the credential store.
// PasswordHash is an opaque bcrypt string and must never reach the UI.
type User struct {
	// ID is assigned at creation time from the wall clock and never changes.
	ID int64

	// Name is the display name. Classes reference their professor by it.
	Name string

	// Email is stored lowercased and is the only lookup key at login.
	// Uniqueness is not enforced by the store.
	Email string

	// PasswordHash is the salted one-way hash of the user's password.
	PasswordHash string

	// Role decides what the Role Gate allows.
	Role Role

	// AssignedClassName and AssignedCourseName are meaningful only for
	// professors and are kept empty for every other role.
	AssignedClassName  string
	AssignedCourseName string
}

// TableName returns the name of the credential store table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Normalize lowercases the email, trims free-text fields, and blanks the
// professor-only fields for any other role.
func (u User) Normalize() User {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = NormalizeEmail(u.Email)
	u.Role = ParseRole(string(u.Role))

	if u.Role != RoleProfessor {
		u.AssignedClassName = ""
		u.AssignedCourseName = ""
	} else {
		u.AssignedClassName = strings.TrimSpace(u.AssignedClassName)
		u.AssignedCourseName = strings.TrimSpace(u.AssignedCourseName)
	}

	return u
}

// NormalizeEmail is the single place where emails are case-folded.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserInput is the payload of the user form. ID == 0 creates a new record.
// An empty Password on edit keeps the stored hash.
type UserInput struct {
	ID                 int64
	Name               string
	Email              string
	Password           string
	Role               Role
	AssignedClassName  string
	AssignedCourseName string
}

// IsNew reports whether the input creates a record.
func (in UserInput) IsNew() bool {
	return in.ID == 0
}
