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
	classFieldName = iota
	classFieldStudents
)

func (m *mainLoopModel) updateClasses(msg tea.KeyMsg) tea.Cmd {
	current, ok := m.currentClass()

	switch {
	case key.Matches(msg, keys.up):
		m.classIdx = moveIndex(m.classIdx, -1, len(m.classes))
	case key.Matches(msg, keys.down):
		m.classIdx = moveIndex(m.classIdx, 1, len(m.classes))
	case key.Matches(msg, keys.esc):
		m.screen = screenHome
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m.cmdLoadClasses()
	case key.Matches(msg, keys.enter) && ok:
		m.selected = current
		m.activities = nil
		m.activityIdx = 0
		m.screen = screenActivities
		m.loading = true
		return m.cmdLoadActivities()
	case key.Matches(msg, keys.copy) && ok:
		return cmdCopy(models.JoinStudents(current.Students))
	case key.Matches(msg, keys.newItem) && m.caps.ManageClassesAndActivities:
		return m.openClassForm(nil)
	case key.Matches(msg, keys.edit) && ok && m.canChangeClass(current):
		return m.openClassForm(&current)
	case key.Matches(msg, keys.delete) && ok && m.canChangeClass(current):
		id := current.ID
		m.confirm = &confirmModel{
			message: fmt.Sprintf(app.MsgConfirmDelete, current.Name),
			onYes: func(m *mainLoopModel) tea.Cmd {
				return m.cmdDeleteClass(id)
			},
		}
	}
	return nil
}

func (m mainLoopModel) currentClass() (models.Class, bool) {
	if m.classIdx < 0 || m.classIdx >= len(m.classes) {
		return models.Class{}, false
	}
	return m.classes[m.classIdx], true
}

func (m mainLoopModel) canChangeClass(c models.Class) bool {
	return m.caps.ManageClassesAndActivities && !c.Synthetic
}

func (m *mainLoopModel) openClassForm(c *models.Class) tea.Cmd {
	m.form = newForm("TURMA", "Nome", "Alunos")
	m.form.placeholder(classFieldStudents, "nomes separados por vírgula")
	m.formEditID = 0
	m.formOwner = ""
	m.errMsg = ""
	m.screen = screenClassForm

	if c != nil {
		m.form.title = "EDITAR TURMA"
		m.formEditID = c.ID
		m.formOwner = c.Professor
		m.form.set(classFieldName, c.Name)
		m.form.set(classFieldStudents, models.JoinStudents(c.Students))
		return nil
	}

	m.form.title = "NOVA TURMA"
	if m.session.Role == models.RoleAdmin {
		return m.cmdLoadProfessors()
	}
	return nil
}

// classProfessor is the owner sent with the form. Only an admin creating a
// class picks one; otherwise the service decides.
func (m mainLoopModel) classProfessor() string {
	switch {
	case m.formEditID != 0:
		return m.formOwner
	case m.session.Role != models.RoleAdmin:
		return m.session.Name
	case m.formProf < len(m.professors):
		return m.professors[m.formProf].Name
	}
	return ""
}

func (m mainLoopModel) classInput() models.ClassInput {
	return models.ClassInput{
		ID:        m.formEditID,
		Name:      m.form.value(classFieldName),
		Professor: m.classProfessor(),
		Students:  m.form.value(classFieldStudents),
	}
}

func (m mainLoopModel) viewClasses() string {
	var b strings.Builder
	if len(m.classes) == 0 && !m.loading {
		b.WriteString("Nenhuma turma disponível\n")
	}

	for i, c := range m.classes {
		label := fmt.Sprintf("%s │ %s", padText(c.Name, 24), padText(valueOrDash(c.Professor), 20))
		b.WriteString(listRow(label, i == m.classIdx))
	}

	if c, ok := m.currentClass(); ok {
		b.WriteString("\nAlunos: ")
		if len(c.Students) == 0 {
			b.WriteString(app.MsgNoStudents)
		} else {
			b.WriteString(models.JoinStudents(c.Students))
		}
		b.WriteString("\n")
	}

	hotKeys := "enter: atividades │ c: copiar alunos │ r: atualizar │ esc: voltar"
	if m.caps.ManageClassesAndActivities {
		hotKeys = "n: nova │ e: editar │ d: excluir │ " + hotKeys
	}
	return renderPage("TURMAS", m.withStatus(b.String()), hotKeys)
}

func (m mainLoopModel) viewClassForm() string {
	professor := valueOrDash(m.classProfessor())
	hotKeys := "tab: próximo campo │ enter: salvar │ esc: cancelar"
	if m.formEditID == 0 && m.session.Role == models.RoleAdmin {
		professor += "  (ctrl+r: trocar)"
		hotKeys = "ctrl+r: professor │ " + hotKeys
	}

	return renderPage(m.form.title, m.withStatus(m.form.view([2]string{"Professor", professor})), hotKeys)
}

func (m *mainLoopModel) cmdLoadClasses() tea.Cmd {
	ctx := m.trace(m.ctx)
	classes := m.services.ClassService

	return func() tea.Msg {
		list, err := classes.Visible(ctx)
		return classesLoadedMsg{classes: list, err: err}
	}
}

func (m *mainLoopModel) cmdLoadProfessors() tea.Cmd {
	ctx := m.trace(m.ctx)
	users := m.services.UserService

	return func() tea.Msg {
		list, err := users.ListProfessors(ctx)
		return professorsLoadedMsg{professors: list, err: err}
	}
}

func (m *mainLoopModel) cmdSaveClass(in models.ClassInput) tea.Cmd {
	ctx := m.trace(m.ctx)
	classes := m.services.ClassService

	return func() tea.Msg {
		_, err := classes.Save(ctx, in)
		return savedMsg{err: err}
	}
}

func (m *mainLoopModel) cmdDeleteClass(id int64) tea.Cmd {
	ctx := m.trace(m.ctx)
	classes := m.services.ClassService

	return func() tea.Msg {
		return deletedMsg{err: classes.Delete(ctx, id)}
	}
}
