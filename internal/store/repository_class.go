package store

import (
	"context"
	"fmt"

	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/models"
)

// Attributes of the "turmas" table.
const (
	classFieldName      = "nome"
	classFieldProfessor = "professor"
	classFieldStudents  = "alunos"
)

type classRepository struct {
	docs   DocumentStore
	logger *logger.Logger
}

// NewClassRepository constructs a [ClassRepository] over docs.
func NewClassRepository(docs DocumentStore, logger *logger.Logger) ClassRepository {
	logger.Debug().Msg("creating class repository")
	return &classRepository{
		docs:   docs,
		logger: logger,
	}
}

func (r *classRepository) List(ctx context.Context) ([]models.Class, error) {
	docs, err := r.docs.Scan(ctx, models.Class{}.TableName(), nil)
	if err != nil {
		return nil, err
	}

	classes := make([]models.Class, 0, len(docs))
	for _, doc := range docs {
		class, err := decodeClass(doc)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*classRepository.List").Msg("malformed class record")
			return nil, err
		}
		classes = append(classes, class)
	}

	return classes, nil
}

func (r *classRepository) Get(ctx context.Context, id int64) (models.Class, error) {
	doc, err := r.docs.Get(ctx, models.Class{}.TableName(), id)
	if err != nil {
		return models.Class{}, err
	}
	return decodeClass(doc)
}

func (r *classRepository) Save(ctx context.Context, class models.Class) error {
	return r.docs.Put(ctx, class.TableName(), Document{
		IDField:             class.ID,
		classFieldName:      class.Name,
		classFieldProfessor: class.Professor,
		classFieldStudents:  models.JoinStudents(class.Students),
	})
}

func (r *classRepository) Delete(ctx context.Context, id int64) error {
	return r.docs.Delete(ctx, models.Class{}.TableName(), id)
}

// decodeClass validates one "turmas" document. The roster is stored as a
// comma separated string; older records holding a JSON array are accepted.
func decodeClass(doc Document) (models.Class, error) {
	var (
		c   models.Class
		err error
	)

	if c.ID, err = requiredInt64(doc, IDField); err != nil {
		return models.Class{}, err
	}
	if c.Name, err = optionalString(doc, classFieldName); err != nil {
		return models.Class{}, fmt.Errorf("class %d: %w", c.ID, err)
	}
	if c.Professor, err = optionalString(doc, classFieldProfessor); err != nil {
		return models.Class{}, fmt.Errorf("class %d: %w", c.ID, err)
	}

	switch v := doc[classFieldStudents].(type) {
	case nil:
	case string:
		c.Students = models.ParseStudents(v)
	case []any:
		for _, s := range v {
			name, ok := s.(string)
			if !ok {
				return models.Class{}, fmt.Errorf("class %d: %w: %q holds a non-string", c.ID, ErrMalformedDocument, classFieldStudents)
			}
			c.Students = append(c.Students, models.ParseStudents(name)...)
		}
	default:
		return models.Class{}, fmt.Errorf("class %d: %w: %q is %T", c.ID, ErrMalformedDocument, classFieldStudents, v)
	}

	return c, nil
}
