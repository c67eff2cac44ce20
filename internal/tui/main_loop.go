package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lyra-school/lyra-client/internal/access"
	"github.com/lyra-school/lyra-client/internal/app"
	"github.com/lyra-school/lyra-client/internal/service"
	"github.com/lyra-school/lyra-client/models"
)

type screen int

const (
	screenHome screen = iota
	screenClasses
	screenClassForm
	screenActivities
	screenActivityForm
	screenUsers
	screenUserForm
)

const statusTTL = 3 * time.Second

type homeAction int

const (
	homeClasses homeAction = iota
	homeUsers
	homeLogout
)

type homeEntry struct {
	label  string
	action homeAction
}

// mainLoopModel drives every screen after login. Capabilities are computed
// once from the session and only decide what is rendered; the services
// check the persisted session again before each operation.
type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	session  models.Session
	caps     access.Capabilities
	trace    traceFunc

	screen  screen
	home    []homeEntry
	homeIdx int

	classes    []models.Class
	classIdx   int
	professors []models.User

	selected    models.Class
	activities  []models.Activity
	activityIdx int

	users   []models.User
	userIdx int

	form       formModel
	formEditID int64
	formRole   int
	formProf   int
	formOwner  string

	loading    bool
	submitting bool
	status     string
	errMsg     string

	confirm    *confirmModel
	errOverlay *errorOverlayModel

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.Services, session models.Session, trace traceFunc) mainLoopModel {
	if trace == nil {
		trace = noTrace
	}
	caps := access.For(session)

	home := []homeEntry{{label: "Gerenciar Turmas", action: homeClasses}}
	if caps.Scope.Kind == models.ScopeSingleSyntheticClass {
		home[0].label = models.SyntheticClassName
	}
	if caps.ManageUsers {
		home = append(home, homeEntry{label: "Gerenciar Usuários", action: homeUsers})
	}
	home = append(home, homeEntry{label: "Sair", action: homeLogout})

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		session:  session,
		caps:     caps,
		trace:    trace,
		screen:   screenHome,
		home:     home,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case classesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			cmd := m.fail(msg.err)
			return m, cmd
		}
		m.classes = msg.classes
		m.classIdx = clampIndex(m.classIdx, len(m.classes))
		return m, nil

	case professorsLoadedMsg:
		if msg.err != nil {
			cmd := m.fail(msg.err)
			return m, cmd
		}
		m.professors = msg.professors
		m.formProf = clampIndex(m.formProf, len(m.professors))
		return m, nil

	case activitiesLoadedMsg:
		if msg.classID != m.selected.ID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			cmd := m.fail(msg.err)
			return m, cmd
		}
		m.activities = msg.activities
		m.activityIdx = clampIndex(m.activityIdx, len(m.activities))
		return m, nil

	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			cmd := m.fail(msg.err)
			return m, cmd
		}
		m.users = msg.users
		m.userIdx = clampIndex(m.userIdx, len(m.users))
		return m, nil

	case savedMsg:
		m.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrNoSession) {
				cmd := m.fail(msg.err)
				return m, cmd
			}
			// the form stays open with its values
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.screen = listScreenOf(m.screen)
		cmd := tea.Batch(m.reload(), m.flash(app.MsgSaved))
		return m, cmd

	case deletedMsg:
		if msg.err != nil {
			cmd := m.fail(msg.err)
			return m, cmd
		}
		cmd := tea.Batch(m.reload(), m.flash(app.MsgDeleted))
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			cmd := m.fail(msg.err)
			return m, cmd
		}
		cmd := m.flash(app.MsgCopied)
		return m, cmd

	case loggedOutMsg:
		if msg.err != nil {
			cmd := m.fail(msg.err)
			return m, cmd
		}
		m.logout = true
		return m, tea.Quit

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if isFormScreen(m.screen) {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.errOverlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			onYes := m.confirm.onYes
			m.confirm = nil
			cmd := onYes(&m)
			return m, cmd
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenHome:
		cmd = m.updateHome(msg)
	case screenClasses:
		cmd = m.updateClasses(msg)
	case screenActivities:
		cmd = m.updateActivities(msg)
	case screenUsers:
		cmd = m.updateUsers(msg)
	case screenClassForm, screenActivityForm, screenUserForm:
		cmd = m.updateForm(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) updateHome(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		m.homeIdx = moveIndex(m.homeIdx, -1, len(m.home))
	case key.Matches(msg, keys.down):
		m.homeIdx = moveIndex(m.homeIdx, 1, len(m.home))
	case key.Matches(msg, keys.logout):
		m.askLogout()
	case key.Matches(msg, keys.enter):
		switch m.home[m.homeIdx].action {
		case homeClasses:
			m.screen = screenClasses
			m.loading = true
			return m.cmdLoadClasses()
		case homeUsers:
			m.screen = screenUsers
			m.loading = true
			return m.cmdLoadUsers()
		case homeLogout:
			m.askLogout()
		}
	}
	return nil
}

func (m *mainLoopModel) askLogout() {
	m.confirm = &confirmModel{
		message: app.MsgConfirmLogout,
		onYes: func(m *mainLoopModel) tea.Cmd {
			return m.cmdLogout()
		},
	}
}

// fail routes an error to the overlay. A missing session ends the loop so
// the caller can send the user back to login.
func (m *mainLoopModel) fail(err error) tea.Cmd {
	m.loading = false
	if errors.Is(err, service.ErrNoSession) {
		m.logout = true
		return tea.Quit
	}
	m.errOverlay = &errorOverlayModel{message: humanizeError(err)}
	return nil
}

func (m *mainLoopModel) flash(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// reload refreshes the list behind the current screen.
func (m *mainLoopModel) reload() tea.Cmd {
	switch m.screen {
	case screenClasses:
		return m.cmdLoadClasses()
	case screenActivities:
		return m.cmdLoadActivities()
	case screenUsers:
		return m.cmdLoadUsers()
	}
	return nil
}

func (m *mainLoopModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.screen = listScreenOf(m.screen)
		return nil
	case key.Matches(msg, keys.tab):
		m.form.next()
		return nil
	case key.Matches(msg, keys.backtab):
		m.form.prev()
		return nil
	case key.Matches(msg, keys.cycle):
		m.cycleFormChoice()
		return nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil
		}
		m.errMsg = ""
		m.submitting = true
		switch m.screen {
		case screenClassForm:
			return m.cmdSaveClass(m.classInput())
		case screenActivityForm:
			return m.cmdSaveActivity(m.activityInput())
		case screenUserForm:
			return m.cmdSaveUser(m.userInput())
		}
		m.submitting = false
		return nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return cmd
}

func (m *mainLoopModel) cycleFormChoice() {
	switch m.screen {
	case screenUserForm:
		m.formRole = moveIndex(m.formRole, 1, len(models.Roles))
	case screenClassForm:
		if m.formEditID == 0 && m.session.Role == models.RoleAdmin {
			m.formProf = moveIndex(m.formProf, 1, len(m.professors))
		}
	}
}

func (m mainLoopModel) View() string {
	var page string
	switch m.screen {
	case screenClasses:
		page = m.viewClasses()
	case screenClassForm:
		page = m.viewClassForm()
	case screenActivities:
		page = m.viewActivities()
	case screenActivityForm:
		page = m.viewActivityForm()
	case screenUsers:
		page = m.viewUsers()
	case screenUserForm:
		page = m.viewUserForm()
	default:
		page = m.viewHome()
	}

	switch {
	case m.errOverlay != nil:
		return page + "\n" + m.errOverlay.View()
	case m.confirm != nil:
		return page + "\n" + m.confirm.View()
	}
	return page
}

func (m mainLoopModel) viewHome() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bem-vindo, %s!\n", valueOrDash(m.session.Name))
	fmt.Fprintf(&b, "%s │ %s\n\n", m.session.Email, m.session.Role.Label())
	for i, entry := range m.home {
		b.WriteString(listRow(entry.label, i == m.homeIdx))
	}
	return renderPage("INÍCIO", m.withStatus(b.String()), "↑/↓: navegar │ enter: abrir │ l: sair da conta │ f1: versão")
}

// withStatus appends the loading, status and error lines under content.
func (m mainLoopModel) withStatus(content string) string {
	content = strings.TrimRight(content, "\n")
	switch {
	case m.loading:
		content += "\n\n" + app.MsgLoading
	case m.submitting:
		content += "\n\n" + app.MsgSaving
	case m.status != "":
		content += "\n\n" + statusStyle.Render(m.status)
	}
	if m.errMsg != "" {
		content += "\n\n" + errorStyle.Render("Erro: "+m.errMsg)
	}
	return content
}

func listRow(label string, selected bool) string {
	if selected {
		return selectedStyle.Render("> "+label) + "\n"
	}
	return "  " + label + "\n"
}

func listScreenOf(s screen) screen {
	switch s {
	case screenClassForm:
		return screenClasses
	case screenActivityForm:
		return screenActivities
	case screenUserForm:
		return screenUsers
	}
	return s
}

func isFormScreen(s screen) bool {
	return s == screenClassForm || s == screenActivityForm || s == screenUserForm
}

func moveIndex(idx, delta, n int) int {
	if n == 0 {
		return 0
	}
	return (idx + delta + n) % n
}

func clampIndex(idx, n int) int {
	switch {
	case n == 0 || idx < 0:
		return 0
	case idx >= n:
		return n - 1
	}
	return idx
}

func (m *mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.trace(m.ctx)
	sessions := m.services.SessionManager

	return func() tea.Msg {
		return loggedOutMsg{err: sessions.ClearSession(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
