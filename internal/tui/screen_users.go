package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lyra-school/lyra-client/internal/app"
	"github.com/lyra-school/lyra-client/models"
)

const (
	userFieldName = iota
	userFieldEmail
	userFieldPassword
	userFieldClass
	userFieldCourse
)

func (m *mainLoopModel) updateUsers(msg tea.KeyMsg) tea.Cmd {
	current, ok := m.currentUser()

	switch {
	case key.Matches(msg, keys.up):
		m.userIdx = moveIndex(m.userIdx, -1, len(m.users))
	case key.Matches(msg, keys.down):
		m.userIdx = moveIndex(m.userIdx, 1, len(m.users))
	case key.Matches(msg, keys.esc):
		m.screen = screenHome
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m.cmdLoadUsers()
	case !m.caps.ManageUsers:
		return nil
	case key.Matches(msg, keys.newItem):
		m.openUserForm(nil)
	case key.Matches(msg, keys.edit) && ok:
		m.openUserForm(&current)
	case key.Matches(msg, keys.delete) && ok:
		id := current.ID
		m.confirm = &confirmModel{
			message: fmt.Sprintf(app.MsgConfirmDelete, current.Name),
			onYes: func(m *mainLoopModel) tea.Cmd {
				return m.cmdDeleteUser(id)
			},
		}
	}
	return nil
}

func (m mainLoopModel) currentUser() (models.User, bool) {
	if m.userIdx < 0 || m.userIdx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.userIdx], true
}

func (m *mainLoopModel) openUserForm(u *models.User) {
	m.form = newForm("NOVO USUÁRIO", "Nome", "Email", "Senha", "Turma", "Curso")
	m.form.masked(userFieldPassword)
	m.formEditID = 0
	m.formRole = 0
	m.errMsg = ""
	m.screen = screenUserForm

	if u == nil {
		return
	}

	m.form.title = "EDITAR USUÁRIO"
	m.formEditID = u.ID
	m.form.set(userFieldName, u.Name)
	m.form.set(userFieldEmail, u.Email)
	m.form.placeholder(userFieldPassword, app.MsgKeepPasswordPlaceholder)
	m.form.set(userFieldClass, u.AssignedClassName)
	m.form.set(userFieldCourse, u.AssignedCourseName)
	for i, r := range models.Roles {
		if r == models.ParseRole(string(u.Role)) {
			m.formRole = i
		}
	}
}

func (m mainLoopModel) userInput() models.UserInput {
	return models.UserInput{
		ID:                 m.formEditID,
		Name:               m.form.value(userFieldName),
		Email:              m.form.value(userFieldEmail),
		Password:           m.form.value(userFieldPassword),
		Role:               models.Roles[m.formRole],
		AssignedClassName:  m.form.value(userFieldClass),
		AssignedCourseName: m.form.value(userFieldCourse),
	}
}

func (m mainLoopModel) viewUsers() string {
	var b strings.Builder
	for i, u := range m.users {
		label := fmt.Sprintf("%s │ %s │ %s", padText(u.Name, 20), padText(u.Email, 28), u.Role.Label())
		b.WriteString(listRow(label, i == m.userIdx))
	}

	return renderPage("USUÁRIOS", m.withStatus(b.String()),
		"n: novo │ e: editar │ d: excluir │ r: atualizar │ esc: voltar")
}

func (m mainLoopModel) viewUserForm() string {
	role := models.Roles[m.formRole].Label() + "  (ctrl+r: trocar)"
	return renderPage(m.form.title, m.withStatus(m.form.view([2]string{"Tipo", role})),
		"tab: próximo campo │ ctrl+r: tipo │ enter: salvar │ esc: cancelar")
}

func (m *mainLoopModel) cmdLoadUsers() tea.Cmd {
	ctx := m.trace(m.ctx)
	users := m.services.UserService

	return func() tea.Msg {
		list, err := users.List(ctx)
		return usersLoadedMsg{users: list, err: err}
	}
}

func (m *mainLoopModel) cmdSaveUser(in models.UserInput) tea.Cmd {
	ctx := m.trace(m.ctx)
	users := m.services.UserService

	return func() tea.Msg {
		_, err := users.Save(ctx, in)
		return savedMsg{err: err}
	}
}

func (m *mainLoopModel) cmdDeleteUser(id int64) tea.Cmd {
	ctx := m.trace(m.ctx)
	users := m.services.UserService

	return func() tea.Msg {
		return deletedMsg{err: users.Delete(ctx, id)}
	}
}
