package service

import (
	"context"
	"fmt"

	"github.com/lyra-school/lyra-client/internal/access"
	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/models"
)

// authorize loads the persisted session and checks allowed against its
// role. Screens hide actions the gate refuses; this is the check that counts.
func authorize(ctx context.Context, sessions SessionManager, action string, allowed func(models.Role) bool) (models.Session, error) {
	session, err := sessions.LoadSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if !allowed(session.Role) {
		logger.FromContext(ctx).Warn().
			Int64("user_id", session.ID).
			Str("role", string(session.Role)).
			Str("action", action).
			Msg("action refused by role gate")
		return models.Session{}, fmt.Errorf("%w: %s", ErrPermissionDenied, action)
	}

	return session, nil
}

func anyRole(models.Role) bool { return true }

var (
	canManageUsers   = access.CanManageUsers
	canManageClasses = access.CanManageClassesAndActivities
)
