package models

import "strings"

// SyntheticClassName is used for a student's pseudo-class when the user
// record carries no class name.
const SyntheticClassName = "Minhas Atividades"

// Class is a record of the "turmas" table.
type Class struct {
	ID        int64
	Name      string
	Professor string
	Students  []string

	// Synthetic marks the pseudo-class derived for a student. It does not
	// exist in the store and cannot be edited or deleted.
	Synthetic bool
}

// TableName returns the name of the credential store table
// associated with the Class model.
func (c Class) TableName() string {
	return "turmas"
}

// ClassInput is the payload of the class form. ID == 0 creates a new record.
type ClassInput struct {
	ID        int64
	Name      string
	Professor string
	Students  string
}

// IsNew reports whether the input creates a record.
func (in ClassInput) IsNew() bool {
	return in.ID == 0
}

// ParseStudents splits a comma separated roster, trimming blanks.
func ParseStudents(s string) []string {
	parts := strings.Split(s, ",")
	students := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			students = append(students, p)
		}
	}
	return students
}

// JoinStudents is the inverse of ParseStudents.
func JoinStudents(students []string) string {
	return strings.Join(students, ", ")
}
