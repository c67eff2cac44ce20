package store

import (
	"github.com/lyra-school/lyra-client/internal/logger"
)

// SessionSlotKey is the single local storage key holding the signed session.
const SessionSlotKey = "current_session"

// Storages groups the repositories over the remote credential store with the
// local slot store, so they can be handed to the service layer as one value.
type Storages struct {
	UserRepository     UserRepository
	ClassRepository    ClassRepository
	ActivityRepository ActivityRepository

	// LocalStorage holds the session slot. Only the session manager writes
	// [SessionSlotKey].
	LocalStorage LocalStorage
}

// NewStorages wires the typed repositories over docs.
func NewStorages(docs DocumentStore, local LocalStorage, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	return &Storages{
		UserRepository:     NewUserRepository(docs, logger),
		ClassRepository:    NewClassRepository(docs, logger),
		ActivityRepository: NewActivityRepository(docs, logger),
		LocalStorage:       local,
	}
}
