package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/internal/store"
	"github.com/lyra-school/lyra-client/internal/utils"
	"github.com/lyra-school/lyra-client/internal/validators"
	"github.com/lyra-school/lyra-client/models"
)

type activityService struct {
	activities store.ActivityRepository
	classes    store.ClassRepository
	users      store.UserRepository
	sessions   SessionManager
	ids        *utils.IDGenerator
	validator  validators.Validator
	timeout    time.Duration
	logger     *logger.Logger
}

// NewActivityService constructs an ActivityService.
func NewActivityService(
	activities store.ActivityRepository,
	classes store.ClassRepository,
	users store.UserRepository,
	sessions SessionManager,
	ids *utils.IDGenerator,
	timeout time.Duration,
	logger *logger.Logger,
) ActivityService {
	return &activityService{
		activities: activities,
		classes:    classes,
		users:      users,
		sessions:   sessions,
		ids:        ids,
		validator:  validators.NewSchoolValidator(),
		timeout:    timeout,
		logger:     logger,
	}
}

func (s *activityService) List(ctx context.Context, classID int64) ([]models.Activity, error) {
	session, err := authorize(ctx, s.sessions, "list activities", anyRole)
	if err != nil {
		return nil, err
	}

	rctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err = visibleClass(rctx, s.classes, s.users, session, classID); err != nil {
		return nil, err
	}

	activities, err := s.activities.ListByClass(rctx, classID)
	if err != nil {
		return nil, mapStoreError(rctx, err)
	}

	return activities, nil
}

func (s *activityService) Save(ctx context.Context, in models.ActivityInput) (models.Activity, error) {
	log := logger.FromContext(ctx)

	session, err := authorize(ctx, s.sessions, "save activity", canManageClasses)
	if err != nil {
		return models.Activity{}, err
	}

	if err = s.validator.Validate(ctx, in); err != nil {
		return models.Activity{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	rctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err = visibleClass(rctx, s.classes, s.users, session, in.ClassID); err != nil {
		return models.Activity{}, err
	}

	if !in.IsNew() {
		if err = s.checkStoredClass(rctx, in.ID, in.ClassID); err != nil {
			return models.Activity{}, err
		}
	}

	activity := models.Activity{
		ID:          in.ID,
		ClassID:     in.ClassID,
		Description: strings.TrimSpace(in.Description),
	}
	if in.IsNew() {
		activity.ID = s.ids.Next()
	}

	if err = s.activities.Save(rctx, activity); err != nil {
		log.Err(err).Int64("activity_id", activity.ID).Msg("error saving activity")
		return models.Activity{}, mapStoreError(rctx, err)
	}

	log.Info().Int64("activity_id", activity.ID).Int64("class_id", activity.ClassID).Msg("activity saved")
	return activity, nil
}

func (s *activityService) Delete(ctx context.Context, classID, id int64) error {
	session, err := authorize(ctx, s.sessions, "delete activity", canManageClasses)
	if err != nil {
		return err
	}

	rctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err = visibleClass(rctx, s.classes, s.users, session, classID); err != nil {
		return err
	}

	if err = s.checkStoredClass(rctx, id, classID); err != nil {
		return err
	}

	if err = s.activities.Delete(rctx, id); err != nil {
		return mapStoreError(rctx, err)
	}

	logger.FromContext(ctx).Info().Int64("activity_id", id).Msg("activity deleted")
	return nil
}

// checkStoredClass makes sure the stored activity id belongs to classID, the
// class the caller was authorized against. A missing record maps to
// ErrRecordNotFound.
func (s *activityService) checkStoredClass(ctx context.Context, id, classID int64) error {
	stored, err := s.activities.Get(ctx, id)
	if err != nil {
		return mapStoreError(ctx, err)
	}
	if stored.ClassID != classID {
		logger.FromContext(ctx).Warn().
			Int64("activity_id", id).
			Int64("class_id", classID).
			Int64("stored_class_id", stored.ClassID).
			Msg("activity belongs to another class")
		return fmt.Errorf("%w: activity %d", ErrPermissionDenied, id)
	}
	return nil
}
