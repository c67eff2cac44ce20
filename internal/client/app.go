package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/internal/service"
	"github.com/lyra-school/lyra-client/internal/tui"
)

var _ Client = (*App)(nil)

type App struct {
	sessions service.SessionManager
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || services.SessionManager == nil {
		return nil, errors.New("client: session manager is required")
	}
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}

	return &App{sessions: services.SessionManager, ui: ui, logger: log}, nil
}

// Run restores the persisted session or asks for a login, then runs the
// main screens. Logging out returns to the login screen; quitting ends Run
// with a nil error.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		session, ok := a.sessions.RequireSession(ctx, func() {
			a.logger.Info().Msg("no persisted session, starting login flow")
		})

		if !ok {
			var err error
			session, err = a.ui.LoginFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		a.logger.Info().Int64("user_id", session.ID).Str("role", string(session.Role)).Msg("session active")

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
	}
}
