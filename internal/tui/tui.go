package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/internal/service"
	"github.com/lyra-school/lyra-client/internal/utils"
	"github.com/lyra-school/lyra-client/models"
)

var ErrUserQuit = errors.New("usuário saiu do programa")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	traces    *utils.UUIDGenerator
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		traces:    utils.NewUUIDGenerator(),
		logger:    log,
	}, nil
}

// LoginFlow runs the login screen until a session is persisted or the user
// quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageLogin: NewLoginModel(ctx, t.services.SessionManager, t.tracer()),
	}

	root := NewRootModel(pages, pageLogin, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the management screens for session. logout reports whether
// the user asked to log out (the slot is already cleared by then).
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session, t.tracer())
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

// tracer returns the function screens use to start a traced user action.
func (t *TUI) tracer() traceFunc {
	return func(ctx context.Context) context.Context {
		return utils.WithTrace(ctx, t.logger, t.traces)
	}
}

// traceFunc derives the context of one user action.
type traceFunc func(context.Context) context.Context

func noTrace(ctx context.Context) context.Context { return ctx }
