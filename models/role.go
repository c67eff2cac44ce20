// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Role is the role tag stored in the "tipo" attribute of a user record.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleProfessor Role = "professor"
	RoleStudent   Role = "aluno"
)

// Roles lists the closed role set in the order the user form cycles it.
var Roles = []Role{RoleStudent, RoleProfessor, RoleAdmin}

// ParseRole maps any stored value onto the closed role set.
// Empty and unrecognized values become RoleStudent.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleProfessor:
		return RoleProfessor
	default:
		return RoleStudent
	}
}

// Label returns the Portuguese label shown in the UI.
func (r Role) Label() string {
	switch ParseRole(string(r)) {
	case RoleAdmin:
		return "Administrador"
	case RoleProfessor:
		return "Professor"
	default:
		return "Aluno"
	}
}
