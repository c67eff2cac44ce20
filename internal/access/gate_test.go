package access

import (
	"testing"

	"github.com/lyra-school/lyra-client/models"
	"github.com/stretchr/testify/assert"
)

func TestGate_Totality(t *testing.T) {
	tests := []struct {
		name          string
		role          models.Role
		manageClasses bool
		manageUsers   bool
		scope         models.ScopeKind
	}{
		{name: "admin", role: models.RoleAdmin, manageClasses: true, manageUsers: true, scope: models.ScopeAll},
		{name: "professor", role: models.RoleProfessor, manageClasses: true, manageUsers: false, scope: models.ScopeOwnedByName},
		{name: "aluno", role: models.RoleStudent, manageClasses: false, manageUsers: false, scope: models.ScopeSingleSyntheticClass},
		{name: "empty", role: "", manageClasses: false, manageUsers: false, scope: models.ScopeSingleSyntheticClass},
		{name: "zero value", manageClasses: false, manageUsers: false, scope: models.ScopeSingleSyntheticClass},
		{name: "unexpected", role: "unexpected", manageClasses: false, manageUsers: false, scope: models.ScopeSingleSyntheticClass},
		{name: "upper case admin", role: "ADMIN", manageClasses: true, manageUsers: true, scope: models.ScopeAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.manageClasses, CanManageClassesAndActivities(tt.role))
				assert.Equal(t, tt.manageUsers, CanManageUsers(tt.role))
				assert.Equal(t, tt.scope, ClassVisibilityScope(tt.role, "Maria").Kind)
			})
		})
	}
}

func TestClassVisibilityScope_ProfessorOwnsByName(t *testing.T) {
	scope := ClassVisibilityScope(models.RoleProfessor, "Maria")

	assert.Equal(t, "Maria", scope.OwnerName)
	assert.True(t, scope.Allows(models.Class{ID: 1, Professor: "Maria"}))
	assert.False(t, scope.Allows(models.Class{ID: 2, Professor: "João"}))
}

func TestClassVisibilityScope_AdminSeesEverything(t *testing.T) {
	scope := ClassVisibilityScope(models.RoleAdmin, "Root")

	assert.Empty(t, scope.OwnerName)
	assert.True(t, scope.Allows(models.Class{ID: 2, Professor: "João"}))
}

func TestClassVisibilityScope_StudentOnlySynthetic(t *testing.T) {
	scope := ClassVisibilityScope(models.RoleStudent, "Ana")

	assert.False(t, scope.Allows(models.Class{ID: 1, Professor: "Ana"}))
	assert.True(t, scope.Allows(models.Class{ID: 7, Synthetic: true}))
}

func TestFor(t *testing.T) {
	caps := For(models.Session{ID: 1, Name: "Maria", Role: models.RoleProfessor})

	assert.True(t, caps.ManageClassesAndActivities)
	assert.False(t, caps.ManageUsers)
	assert.Equal(t, models.Scope{Kind: models.ScopeOwnedByName, OwnerName: "Maria"}, caps.Scope)
}
