package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lyra-school/lyra-client/internal/crypto"
	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/internal/store"
	"github.com/lyra-school/lyra-client/internal/utils"
	"github.com/lyra-school/lyra-client/internal/validators"
	"github.com/lyra-school/lyra-client/models"
)

// sessionManager is the concrete implementation of SessionManager.
type sessionManager struct {
	// users is the remote credential lookup.
	users store.UserRepository

	// local holds the session slot under store.SessionSlotKey.
	local store.LocalStorage

	hasher    crypto.PasswordHasher
	codec     *utils.SessionTokenCodec
	validator validators.Validator

	// timeout bounds each remote call.
	timeout time.Duration

	// inFlight is set while an Authenticate call runs.
	inFlight atomic.Bool

	logger *logger.Logger
}

// NewSessionManager constructs a SessionManager. timeout bounds every call
// to the credential store; zero disables the bound.
func NewSessionManager(
	users store.UserRepository,
	local store.LocalStorage,
	hasher crypto.PasswordHasher,
	codec *utils.SessionTokenCodec,
	timeout time.Duration,
	logger *logger.Logger,
) SessionManager {
	return &sessionManager{
		users:     users,
		local:     local,
		hasher:    hasher,
		codec:     codec,
		validator: validators.NewSchoolValidator(),
		timeout:   timeout,
		logger:    logger,
	}
}

func (m *sessionManager) Authenticate(ctx context.Context, email, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, models.Credentials{Email: email, Password: password}); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if !m.inFlight.CompareAndSwap(false, true) {
		log.Debug().Str("func", "*sessionManager.Authenticate").Msg("authentication already in flight")
		return models.Session{}, ErrSubmissionInProgress
	}
	defer m.inFlight.Store(false)

	email = models.NormalizeEmail(email)

	user, err := m.lookup(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		m.hasher.VerifyDummy(password)
		log.Info().Str("func", "*sessionManager.Authenticate").Msg("login rejected: unknown email")
		return models.Session{}, err
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionManager.Authenticate").Msg("credential lookup failed")
		return models.Session{}, err
	}

	if err = m.hasher.Verify(user.PasswordHash, password); err != nil {
		if !errors.Is(err, crypto.ErrMismatchedPassword) {
			log.Error().Err(err).Int64("user_id", user.ID).Msg("stored password hash is unusable")
		} else {
			log.Info().Int64("user_id", user.ID).Msg("login rejected: wrong password")
		}
		return models.Session{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}

	session := models.NewSession(user)
	if err = m.PersistSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*sessionManager.Authenticate").Msg("error persisting session")
		return models.Session{}, err
	}

	log.Info().Int64("user_id", session.ID).Str("role", string(session.Role)).Msg("user logged in")
	return session, nil
}

// lookup fetches the user record for a normalized email. When the store
// holds duplicates the record with the lowest id wins.
func (m *sessionManager) lookup(ctx context.Context, email string) (models.User, error) {
	rctx, cancel := withTimeout(ctx, m.timeout)
	defer cancel()

	users, err := m.users.FindByEmail(rctx, email)
	if err != nil {
		return models.User{}, mapStoreError(rctx, err)
	}

	switch len(users) {
	case 0:
		return models.User{}, ErrUserNotFound
	case 1:
		return users[0], nil
	}

	chosen := users[0]
	for _, u := range users[1:] {
		if u.ID < chosen.ID {
			chosen = u
		}
	}

	logger.FromContext(ctx).Warn().
		Int("matches", len(users)).
		Int64("chosen_id", chosen.ID).
		Msg("duplicate email in users table, using lowest id")

	return chosen, nil
}

func (m *sessionManager) PersistSession(ctx context.Context, session models.Session) error {
	token, err := m.codec.Encode(session)
	if err != nil {
		return fmt.Errorf("error signing session: %w", err)
	}

	if err = m.local.Put(ctx, store.SessionSlotKey, []byte(token)); err != nil {
		return fmt.Errorf("error writing session slot: %w", err)
	}

	return nil
}

func (m *sessionManager) LoadSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	raw, err := m.local.Get(ctx, store.SessionSlotKey)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error reading session slot: %w", err)
	}

	session, err := m.codec.Decode(string(raw))
	if err != nil {
		log.Warn().Err(err).Msg("discarding corrupt session slot")
		if clearErr := m.ClearSession(ctx); clearErr != nil {
			log.Err(clearErr).Msg("error clearing corrupt session slot")
		}
		return models.Session{}, fmt.Errorf("%w: %w", ErrNoSession, ErrCorruptSession)
	}

	return session, nil
}

func (m *sessionManager) ClearSession(ctx context.Context) error {
	if err := m.local.Delete(ctx, store.SessionSlotKey); err != nil {
		return fmt.Errorf("error clearing session slot: %w", err)
	}
	return nil
}

func (m *sessionManager) RequireSession(ctx context.Context, onAbsent func()) (models.Session, bool) {
	session, err := m.LoadSession(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			logger.FromContext(ctx).Err(err).Msg("session slot unreadable, treating as logged out")
		}
		if onAbsent != nil {
			onAbsent()
		}
		return models.Session{}, false
	}

	return session, true
}
