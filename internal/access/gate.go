// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access is the Role Gate: pure decisions from a role tag to the
// actions and data a user may reach.
//
// The functions never fail and never perform I/O. Any value outside the
// closed role set is treated as [models.RoleStudent], the least privileged
// role. Screens call the gate to decide what to render, and services call
// it again right before a mutation.
package access

import "github.com/lyra-school/lyra-client/models"

// CanManageClassesAndActivities reports whether role may create, edit and
// delete classes and activities.
func CanManageClassesAndActivities(role models.Role) bool {
	switch models.ParseRole(string(role)) {
	case models.RoleAdmin, models.RoleProfessor:
		return true
	default:
		return false
	}
}

// CanManageUsers reports whether role may list and modify user records.
func CanManageUsers(role models.Role) bool {
	return models.ParseRole(string(role)) == models.RoleAdmin
}

// ClassVisibilityScope returns which classes role may see. displayName is
// the session's display name, used as the owner for professors.
func ClassVisibilityScope(role models.Role, displayName string) models.Scope {
	switch models.ParseRole(string(role)) {
	case models.RoleAdmin:
		return models.Scope{Kind: models.ScopeAll}
	case models.RoleProfessor:
		return models.Scope{Kind: models.ScopeOwnedByName, OwnerName: displayName}
	default:
		return models.Scope{Kind: models.ScopeSingleSyntheticClass}
	}
}

// Capabilities bundles the gate decisions for one render.
type Capabilities struct {
	ManageClassesAndActivities bool
	ManageUsers                bool
	Scope                      models.Scope
}

// For evaluates every gate decision for session in one call.
func For(session models.Session) Capabilities {
	return Capabilities{
		ManageClassesAndActivities: CanManageClassesAndActivities(session.Role),
		ManageUsers:                CanManageUsers(session.Role),
		Scope:                      ClassVisibilityScope(session.Role, session.Name),
	}
}
