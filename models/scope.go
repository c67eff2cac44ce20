package models

// ScopeKind enumerates how much of the class table a role may see.
type ScopeKind int

const (
	// ScopeSingleSyntheticClass shows one pseudo-class built from the
	// user's own record. It is the zero value so that an unset scope is
	// the least privileged one.
	ScopeSingleSyntheticClass ScopeKind = iota
	// ScopeOwnedByName shows classes whose professor equals OwnerName.
	ScopeOwnedByName
	// ScopeAll shows every class.
	ScopeAll
)

// Scope is the class visibility decided by the Role Gate.
type Scope struct {
	Kind      ScopeKind
	OwnerName string
}

// Allows reports whether c is visible under the scope.
func (s Scope) Allows(c Class) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeOwnedByName:
		return s.OwnerName != "" && c.Professor == s.OwnerName
	default:
		return c.Synthetic
	}
}
