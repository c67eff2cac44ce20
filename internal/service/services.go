package service

import (
	"github.com/lyra-school/lyra-client/internal/config"
	"github.com/lyra-school/lyra-client/internal/crypto"
	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/internal/store"
	"github.com/lyra-school/lyra-client/internal/utils"
)

// Services groups everything the UI layer calls.
type Services struct {
	SessionManager  SessionManager
	UserService     UserService
	ClassService    ClassService
	ActivityService ActivityService
}

// NewServices wires the services over storages. The password hasher, the
// session token codec and the record id generator are shared by all of them.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	codec := utils.NewSessionTokenCodec(cfg.App.SessionSignKey, cfg.App.SessionIssuer)
	ids := utils.NewIDGenerator()
	timeout := cfg.App.RequestTimeout

	sessions := NewSessionManager(storages.UserRepository, storages.LocalStorage, hasher, codec, timeout, logger)

	return &Services{
		SessionManager:  sessions,
		UserService:     NewUserService(storages.UserRepository, sessions, hasher, ids, timeout, logger),
		ClassService:    NewClassService(storages.ClassRepository, storages.ActivityRepository, storages.UserRepository, sessions, ids, timeout, logger),
		ActivityService: NewActivityService(storages.ActivityRepository, storages.ClassRepository, storages.UserRepository, sessions, ids, timeout, logger),
	}
}
