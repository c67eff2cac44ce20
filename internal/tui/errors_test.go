package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lyra-school/lyra-client/internal/app"
	"github.com/lyra-school/lyra-client/internal/service"
	"github.com/lyra-school/lyra-client/internal/validators"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unknown email", err: service.ErrUserNotFound, want: app.MsgInvalidCredentials},
		{name: "wrong password", err: fmt.Errorf("login: %w", service.ErrWrongPassword), want: app.MsgInvalidCredentials},
		{name: "double submit", err: service.ErrSubmissionInProgress, want: app.MsgSubmissionInProgress},
		{name: "timeout", err: fmt.Errorf("%w: %w", service.ErrTimeout, context.DeadlineExceeded), want: app.MsgTimeout},
		{name: "remote", err: fmt.Errorf("%w: connection refused", service.ErrRemote), want: app.MsgRemoteUnavailable},
		{name: "no session", err: service.ErrNoSession, want: app.MsgSessionExpired},
		{name: "corrupt session", err: fmt.Errorf("%w: %w", service.ErrNoSession, service.ErrCorruptSession), want: app.MsgSessionExpired},
		{name: "denied", err: service.ErrPermissionDenied, want: app.MsgPermissionDenied},
		{name: "gone", err: service.ErrRecordNotFound, want: app.MsgRecordNotFound},
		{name: "hash missing", err: service.ErrStoredHashMissing, want: app.MsgStoredPasswordMissing},
		{name: "class in use", err: service.ErrClassHasActivities, want: app.MsgClassHasActivities},
		{name: "own account", err: service.ErrDeleteOwnAccount, want: app.MsgDeleteOwnAccount},
		{name: "unexpected", err: errors.New("boom"), want: app.MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestHumanizeError_Validation(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		want  string
	}{
		{name: "password", cause: validators.ErrEmptyPassword, want: app.MsgPasswordRequired},
		{name: "email", cause: validators.ErrInvalidEmail, want: app.MsgInvalidEmail},
		{name: "professor assignment", cause: validators.ErrProfessorAssignmentRequired, want: app.MsgProfessorAssignment},
		{name: "class professor", cause: validators.ErrEmptyProfessor, want: app.MsgClassNameAndProfessor},
		{name: "description", cause: validators.ErrEmptyDescription, want: app.MsgActivityDescription},
		{name: "name", cause: validators.ErrEmptyName, want: app.MsgFillRequiredFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("%w: %w", service.ErrValidation, tt.cause)
			assert.Equal(t, tt.want, humanizeError(err))
		})
	}
}

func TestLoginErrorMessage_ValidationIsFillAllFields(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrEmptyPassword)
	assert.Equal(t, app.MsgFillAllFields, loginErrorMessage(err))
}

func TestPadText(t *testing.T) {
	assert.Equal(t, "Usuários  ", padText("Usuários", 10))
	assert.Equal(t, "Lon...", padText("Longer name", 6))
	assert.Equal(t, "-", valueOrDash("  "))
}
