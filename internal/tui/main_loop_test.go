package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lyra-school/lyra-client/internal/app"
	"github.com/lyra-school/lyra-client/internal/mock"
	"github.com/lyra-school/lyra-client/internal/service"
	"github.com/lyra-school/lyra-client/internal/validators"
	"github.com/lyra-school/lyra-client/models"
)

var (
	admin     = models.Session{ID: 1, Name: "Admin", Email: "admin@school.test", Role: models.RoleAdmin}
	professor = models.Session{ID: 2, Name: "Carla", Email: "carla@school.test", Role: models.RoleProfessor}
	student   = models.Session{ID: 4, Name: "Eva", Email: "a@b.com", Role: models.RoleStudent}
)

type testServices struct {
	sessions   *mock.MockSessionManager
	users      *mock.MockUserService
	classes    *mock.MockClassService
	activities *mock.MockActivityService
}

func newTestServices(ctrl *gomock.Controller) (*service.Services, testServices) {
	ts := testServices{
		sessions:   mock.NewMockSessionManager(ctrl),
		users:      mock.NewMockUserService(ctrl),
		classes:    mock.NewMockClassService(ctrl),
		activities: mock.NewMockActivityService(ctrl),
	}
	return &service.Services{
		SessionManager:  ts.sessions,
		UserService:     ts.users,
		ClassService:    ts.classes,
		ActivityService: ts.activities,
	}, ts
}

// send runs one Update and returns the concrete model.
func send(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(mainLoopModel)
	require.True(t, ok)
	return next, cmd
}

func homeLabels(m mainLoopModel) []string {
	labels := make([]string, 0, len(m.home))
	for _, e := range m.home {
		labels = append(labels, e.label)
	}
	return labels
}

func TestNewMainLoopModel_HomeEntriesPerRole(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		want    []string
	}{
		{name: "admin", session: admin, want: []string{"Gerenciar Turmas", "Gerenciar Usuários", "Sair"}},
		{name: "professor", session: professor, want: []string{"Gerenciar Turmas", "Sair"}},
		{name: "student", session: student, want: []string{models.SyntheticClassName, "Sair"}},
		{name: "unknown role", session: models.Session{ID: 9, Role: "root"}, want: []string{models.SyntheticClassName, "Sair"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			services, _ := newTestServices(ctrl)

			m := newMainLoopModel(context.Background(), services, tt.session, nil)
			assert.Equal(t, tt.want, homeLabels(m))
		})
	}
}

func TestMainLoop_OpenClassesLoadsVisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, ts := newTestServices(ctrl)

	classes := []models.Class{{ID: 10, Name: "3A", Professor: "Carla", Students: []string{"Ana", "Bia"}}}
	ts.classes.EXPECT().Visible(gomock.Any()).Return(classes, nil)

	m := newMainLoopModel(context.Background(), services, professor, nil)
	m, cmd := send(t, m, enterKey)
	require.NotNil(t, cmd)
	assert.Equal(t, screenClasses, m.screen)
	assert.True(t, m.loading)

	m, _ = send(t, m, cmd())
	assert.False(t, m.loading)
	assert.Equal(t, classes, m.classes)

	view := m.View()
	assert.Contains(t, view, "3A")
	assert.Contains(t, view, "Ana, Bia")
	assert.Contains(t, view, "n: nova")
}

func TestMainLoop_StudentSeesNoMutationKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, _ := newTestServices(ctrl)

	m := newMainLoopModel(context.Background(), services, student, nil)
	m.screen = screenClasses
	m.classes = []models.Class{{ID: student.ID, Name: models.SyntheticClassName, Synthetic: true}}

	view := m.View()
	assert.NotContains(t, view, "n: nova")
	assert.NotContains(t, view, "d: excluir")

	for _, k := range []string{"n", "e", "d"} {
		next, cmd := send(t, m, typeKeys(k))
		assert.Nil(t, cmd, k)
		assert.Equal(t, screenClasses, next.screen, k)
		assert.Nil(t, next.confirm, k)
	}
}

func TestMainLoop_SyntheticClassCannotBeEdited(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, _ := newTestServices(ctrl)

	// even a manager never gets the edit form for a synthetic entry
	m := newMainLoopModel(context.Background(), services, admin, nil)
	m.screen = screenClasses
	m.classes = []models.Class{{ID: 4, Name: models.SyntheticClassName, Synthetic: true}}

	m, cmd := send(t, m, typeKeys("e"))
	assert.Nil(t, cmd)
	assert.Equal(t, screenClasses, m.screen)
}

func TestMainLoop_AdminCreatesClassForPickedProfessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, ts := newTestServices(ctrl)

	ts.users.EXPECT().ListProfessors(gomock.Any()).Return([]models.User{
		{ID: 2, Name: "Carla", Role: models.RoleProfessor},
		{ID: 3, Name: "Davi", Role: models.RoleProfessor},
	}, nil)
	ts.classes.EXPECT().Save(gomock.Any(), models.ClassInput{Name: "3B", Professor: "Davi", Students: "Ana, Bia"}).
		Return(models.Class{ID: 12, Name: "3B", Professor: "Davi"}, nil)
	ts.classes.EXPECT().Visible(gomock.Any()).Return(nil, nil).AnyTimes()

	m := newMainLoopModel(context.Background(), services, admin, nil)
	m.screen = screenClasses

	m, cmd := send(t, m, typeKeys("n"))
	require.NotNil(t, cmd)
	assert.Equal(t, screenClassForm, m.screen)
	m, _ = send(t, m, cmd())

	m, _ = send(t, m, typeKeys("3B"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, typeKeys("Ana, Bia"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Contains(t, m.View(), "Davi")

	m, cmd = send(t, m, enterKey)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	m, _ = send(t, m, cmd())
	assert.False(t, m.submitting)
	assert.Equal(t, screenClasses, m.screen)
	assert.Equal(t, app.MsgSaved, m.status)
}

func TestMainLoop_FormEnterWhileSubmittingIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, _ := newTestServices(ctrl)

	m := newMainLoopModel(context.Background(), services, professor, nil)
	m.selected = models.Class{ID: 10, Name: "3A"}
	m.screen = screenActivities
	m, _ = send(t, m, typeKeys("n"))
	require.Equal(t, screenActivityForm, m.screen)

	m, first := send(t, m, enterKey)
	require.NotNil(t, first)

	_, second := send(t, m, enterKey)
	assert.Nil(t, second)
}

func TestMainLoop_SaveErrorKeepsFormOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, ts := newTestServices(ctrl)

	ts.users.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(models.User{}, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrEmptyPassword))

	m := newMainLoopModel(context.Background(), services, admin, nil)
	m.screen = screenUsers
	m, _ = send(t, m, typeKeys("n"))
	m, _ = send(t, m, typeKeys("Ivo"))

	m, cmd := send(t, m, enterKey)
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	assert.Equal(t, screenUserForm, m.screen)
	assert.Equal(t, app.MsgPasswordRequired, m.errMsg)
	assert.Equal(t, "Ivo", m.form.value(userFieldName))
}

func TestMainLoop_UserFormEditKeepsPasswordBlank(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, ts := newTestServices(ctrl)

	edited := models.User{ID: 2, Name: "Carla", Email: "carla@school.test", Role: models.RoleProfessor, AssignedClassName: "3A", AssignedCourseName: "Art"}
	ts.users.EXPECT().Save(gomock.Any(), models.UserInput{
		ID: 2, Name: "Carla", Email: "carla@school.test", Role: models.RoleProfessor,
		AssignedClassName: "3A", AssignedCourseName: "Art",
	}).Return(edited, nil)
	ts.users.EXPECT().List(gomock.Any()).Return([]models.User{edited}, nil).AnyTimes()

	m := newMainLoopModel(context.Background(), services, admin, nil)
	m.screen = screenUsers
	m.users = []models.User{edited}

	m, _ = send(t, m, typeKeys("e"))
	require.Equal(t, screenUserForm, m.screen)
	assert.Equal(t, app.MsgKeepPasswordPlaceholder, m.form.fields[userFieldPassword].input.Placeholder)
	assert.Equal(t, models.RoleProfessor, models.Roles[m.formRole])

	m, cmd := send(t, m, enterKey)
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.Equal(t, screenUsers, m.screen)
}

func TestMainLoop_DeleteAsksConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, ts := newTestServices(ctrl)

	ts.classes.EXPECT().Delete(gomock.Any(), int64(10)).Return(fmt.Errorf("%w: 1 activity", service.ErrClassHasActivities))

	m := newMainLoopModel(context.Background(), services, professor, nil)
	m.screen = screenClasses
	m.classes = []models.Class{{ID: 10, Name: "3A", Professor: "Carla"}}

	m, cmd := send(t, m, typeKeys("d"))
	assert.Nil(t, cmd)
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), `Excluir "3A"?`)

	m, cmd = send(t, m, typeKeys("y"))
	require.NotNil(t, cmd)
	assert.Nil(t, m.confirm)

	m, _ = send(t, m, cmd())
	require.NotNil(t, m.errOverlay)
	assert.Equal(t, app.MsgClassHasActivities, m.errOverlay.message)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.errOverlay)
}

func TestMainLoop_DeclinedConfirmationDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, _ := newTestServices(ctrl)

	m := newMainLoopModel(context.Background(), services, professor, nil)
	m.screen = screenClasses
	m.classes = []models.Class{{ID: 10, Name: "3A", Professor: "Carla"}}

	m, _ = send(t, m, typeKeys("d"))
	m, cmd := send(t, m, typeKeys("n"))
	assert.Nil(t, cmd)
	assert.Nil(t, m.confirm)
	assert.Equal(t, screenClasses, m.screen)
}

func TestMainLoop_LogoutClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, ts := newTestServices(ctrl)

	ts.sessions.EXPECT().ClearSession(gomock.Any()).Return(nil)

	m := newMainLoopModel(context.Background(), services, student, nil)
	m, _ = send(t, m, typeKeys("l"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), app.MsgConfirmLogout)

	m, cmd := send(t, m, typeKeys("s"))
	require.NotNil(t, cmd)

	m, cmd = send(t, m, cmd())
	assert.True(t, m.logout)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_MissingSessionEndsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, _ := newTestServices(ctrl)

	m := newMainLoopModel(context.Background(), services, admin, nil)
	m.screen = screenUsers

	m, cmd := send(t, m, usersLoadedMsg{err: fmt.Errorf("authorize: %w", service.ErrNoSession)})
	assert.True(t, m.logout)
	assert.Nil(t, m.errOverlay)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_PermissionDeniedShowsOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, _ := newTestServices(ctrl)

	m := newMainLoopModel(context.Background(), services, professor, nil)
	m.screen = screenClasses

	m, cmd := send(t, m, deletedMsg{err: service.ErrPermissionDenied})
	assert.Nil(t, cmd)
	assert.False(t, m.logout)
	require.NotNil(t, m.errOverlay)
	assert.Equal(t, app.MsgPermissionDenied, m.errOverlay.message)
}

func TestMainLoop_StaleActivitiesAreDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	services, _ := newTestServices(ctrl)

	m := newMainLoopModel(context.Background(), services, professor, nil)
	m.screen = screenActivities
	m.selected = models.Class{ID: 11}

	m, _ = send(t, m, activitiesLoadedMsg{classID: 10, activities: []models.Activity{{ID: 100, ClassID: 10}}})
	assert.Empty(t, m.activities)
}
