package store

import (
	"context"
	"fmt"

	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/models"
)

// Attributes of the "atividades" table.
const (
	activityFieldClassID     = "turmaId"
	activityFieldDescription = "descricao"
)

type activityRepository struct {
	docs   DocumentStore
	logger *logger.Logger
}

// NewActivityRepository constructs an [ActivityRepository] over docs.
func NewActivityRepository(docs DocumentStore, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		docs:   docs,
		logger: logger,
	}
}

func (r *activityRepository) ListByClass(ctx context.Context, classID int64) ([]models.Activity, error) {
	docs, err := r.docs.Scan(ctx, models.Activity{}.TableName(), Filter{activityFieldClassID: classID})
	if err != nil {
		return nil, err
	}

	activities := make([]models.Activity, 0, len(docs))
	for _, doc := range docs {
		a, err := decodeActivity(doc)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*activityRepository.ListByClass").Msg("malformed activity record")
			return nil, err
		}
		activities = append(activities, a)
	}

	return activities, nil
}

func (r *activityRepository) Get(ctx context.Context, id int64) (models.Activity, error) {
	doc, err := r.docs.Get(ctx, models.Activity{}.TableName(), id)
	if err != nil {
		return models.Activity{}, err
	}
	return decodeActivity(doc)
}

func (r *activityRepository) Save(ctx context.Context, activity models.Activity) error {
	return r.docs.Put(ctx, activity.TableName(), Document{
		IDField:                  activity.ID,
		activityFieldClassID:     activity.ClassID,
		activityFieldDescription: activity.Description,
	})
}

func (r *activityRepository) Delete(ctx context.Context, id int64) error {
	return r.docs.Delete(ctx, models.Activity{}.TableName(), id)
}

func decodeActivity(doc Document) (models.Activity, error) {
	var (
		a   models.Activity
		err error
	)

	if a.ID, err = requiredInt64(doc, IDField); err != nil {
		return models.Activity{}, err
	}
	if a.ClassID, err = requiredInt64(doc, activityFieldClassID); err != nil {
		return models.Activity{}, fmt.Errorf("activity %d: %w", a.ID, err)
	}
	if a.Description, err = optionalString(doc, activityFieldDescription); err != nil {
		return models.Activity{}, fmt.Errorf("activity %d: %w", a.ID, err)
	}

	return a, nil
}
