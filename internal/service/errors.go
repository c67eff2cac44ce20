package service

import "errors"

// Errors surfaced to the UI layer. Store and validation details are wrapped
// behind them with %w, so errors.Is works on both levels.
var (
	ErrValidation           = errors.New("validation failed")
	ErrUserNotFound         = errors.New("no such user")
	ErrWrongPassword        = errors.New("wrong password")
	ErrRemote               = errors.New("remote store unavailable")
	ErrTimeout              = errors.New("remote store timed out")
	ErrSubmissionInProgress = errors.New("submission already in progress")

	ErrNoSession      = errors.New("no session")
	ErrCorruptSession = errors.New("corrupt session")

	ErrPermissionDenied   = errors.New("permission denied")
	ErrRecordNotFound     = errors.New("record not found")
	ErrStoredHashMissing  = errors.New("stored password hash missing")
	ErrClassHasActivities = errors.New("class still has activities")
	ErrDeleteOwnAccount   = errors.New("cannot delete own account")
)
