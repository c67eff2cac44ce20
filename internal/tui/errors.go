// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/lyra-school/lyra-client/internal/app"
	"github.com/lyra-school/lyra-client/internal/service"
	"github.com/lyra-school/lyra-client/internal/validators"
)

// humanizeError maps a service error onto the text shown to the user.
// Unknown email and wrong password share one message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrWrongPassword):
		return app.MsgInvalidCredentials
	case errors.Is(err, service.ErrSubmissionInProgress):
		return app.MsgSubmissionInProgress
	case errors.Is(err, service.ErrTimeout):
		return app.MsgTimeout
	case errors.Is(err, service.ErrRemote):
		return app.MsgRemoteUnavailable
	case errors.Is(err, service.ErrNoSession):
		return app.MsgSessionExpired
	case errors.Is(err, service.ErrPermissionDenied):
		return app.MsgPermissionDenied
	case errors.Is(err, service.ErrRecordNotFound):
		return app.MsgRecordNotFound
	case errors.Is(err, service.ErrStoredHashMissing):
		return app.MsgStoredPasswordMissing
	case errors.Is(err, service.ErrClassHasActivities):
		return app.MsgClassHasActivities
	case errors.Is(err, service.ErrDeleteOwnAccount):
		return app.MsgDeleteOwnAccount
	case errors.Is(err, service.ErrValidation):
		return humanizeValidation(err)
	}

	return app.MsgUnexpected
}

func humanizeValidation(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyPassword):
		return app.MsgPasswordRequired
	case errors.Is(err, validators.ErrInvalidEmail):
		return app.MsgInvalidEmail
	case errors.Is(err, validators.ErrProfessorAssignmentRequired):
		return app.MsgProfessorAssignment
	case errors.Is(err, validators.ErrEmptyProfessor):
		return app.MsgClassNameAndProfessor
	case errors.Is(err, validators.ErrEmptyDescription), errors.Is(err, validators.ErrInvalidClassID):
		return app.MsgActivityDescription
	}

	return app.MsgFillRequiredFields
}
