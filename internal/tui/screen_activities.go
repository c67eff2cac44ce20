package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lyra-school/lyra-client/internal/app"
	"github.com/lyra-school/lyra-client/models"
)

const activityFieldDescription = 0

func (m *mainLoopModel) updateActivities(msg tea.KeyMsg) tea.Cmd {
	current, ok := m.currentActivity()
	manage := m.caps.ManageClassesAndActivities

	switch {
	case key.Matches(msg, keys.up):
		m.activityIdx = moveIndex(m.activityIdx, -1, len(m.activities))
	case key.Matches(msg, keys.down):
		m.activityIdx = moveIndex(m.activityIdx, 1, len(m.activities))
	case key.Matches(msg, keys.esc):
		m.screen = screenClasses
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m.cmdLoadActivities()
	case key.Matches(msg, keys.newItem) && manage:
		m.openActivityForm(nil)
	case key.Matches(msg, keys.edit) && manage && ok:
		m.openActivityForm(&current)
	case key.Matches(msg, keys.delete) && manage && ok:
		classID, id := current.ClassID, current.ID
		m.confirm = &confirmModel{
			message: fmt.Sprintf(app.MsgConfirmDelete, fitText(current.Description, 40)),
			onYes: func(m *mainLoopModel) tea.Cmd {
				return m.cmdDeleteActivity(classID, id)
			},
		}
	}
	return nil
}

func (m mainLoopModel) currentActivity() (models.Activity, bool) {
	if m.activityIdx < 0 || m.activityIdx >= len(m.activities) {
		return models.Activity{}, false
	}
	return m.activities[m.activityIdx], true
}

func (m *mainLoopModel) openActivityForm(a *models.Activity) {
	m.form = newForm("NOVA ATIVIDADE", "Descrição")
	m.formEditID = 0
	m.errMsg = ""
	m.screen = screenActivityForm

	if a != nil {
		m.form.title = "EDITAR ATIVIDADE"
		m.formEditID = a.ID
		m.form.set(activityFieldDescription, a.Description)
	}
}

func (m mainLoopModel) activityInput() models.ActivityInput {
	return models.ActivityInput{
		ID:          m.formEditID,
		ClassID:     m.selected.ID,
		Description: m.form.value(activityFieldDescription),
	}
}

func (m mainLoopModel) viewActivities() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Turma: %s\n\n", m.selected.Name)

	if len(m.activities) == 0 && !m.loading {
		b.WriteString(app.MsgNoActivities + "\n")
	}
	for i, a := range m.activities {
		b.WriteString(listRow(fitText(a.Description, 60), i == m.activityIdx))
	}

	hotKeys := "r: atualizar │ esc: voltar"
	if m.caps.ManageClassesAndActivities {
		hotKeys = "n: nova │ e: editar │ d: excluir │ " + hotKeys
	}
	return renderPage("ATIVIDADES", m.withStatus(b.String()), hotKeys)
}

func (m mainLoopModel) viewActivityForm() string {
	return renderPage(m.form.title, m.withStatus(m.form.view([2]string{"Turma", m.selected.Name})),
		"enter: salvar │ esc: cancelar")
}

func (m *mainLoopModel) cmdLoadActivities() tea.Cmd {
	ctx := m.trace(m.ctx)
	activities := m.services.ActivityService
	classID := m.selected.ID

	return func() tea.Msg {
		list, err := activities.List(ctx, classID)
		return activitiesLoadedMsg{classID: classID, activities: list, err: err}
	}
}

func (m *mainLoopModel) cmdSaveActivity(in models.ActivityInput) tea.Cmd {
	ctx := m.trace(m.ctx)
	activities := m.services.ActivityService

	return func() tea.Msg {
		_, err := activities.Save(ctx, in)
		return savedMsg{err: err}
	}
}

func (m *mainLoopModel) cmdDeleteActivity(classID, id int64) tea.Cmd {
	ctx := m.trace(m.ctx)
	activities := m.services.ActivityService

	return func() tea.Msg {
		return deletedMsg{err: activities.Delete(ctx, classID, id)}
	}
}
