package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lyra-school/lyra-client/internal/logger"
)

const documentsTable = "documents"

// postgresDocumentStore keeps every remote table in one JSONB document table
// keyed by (table_name, id).
type postgresDocumentStore struct {
	db      *DB
	builder sq.StatementBuilderType
}

// NewPostgresDocumentStore constructs a [DocumentStore] over db. The schema
// must already be migrated.
func NewPostgresDocumentStore(db *DB, log *logger.Logger) DocumentStore {
	log.Debug().Msg("creating postgres document store")
	return &postgresDocumentStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Scan implements [DocumentStore]. The filter is applied with JSONB
// containment so that numbers and strings compare with their stored types.
func (s *postgresDocumentStore) Scan(ctx context.Context, table string, filter Filter) ([]Document, error) {
	log := logger.FromContext(ctx)

	query := s.builder.
		Select("body").
		From(documentsTable).
		Where(sq.Eq{"table_name": table}).
		OrderBy("id")

	if len(filter) > 0 {
		containment, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		query = query.Where("body @> ?::jsonb", string(containment))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Err(err).Str("func", "*postgresDocumentStore.Scan").Str("table", table).Msg("error executing query")
		return nil, remoteError(s.db.errorClassificator, "scan "+table, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var body []byte
		if err = rows.Scan(&body); err != nil {
			return nil, remoteError(s.db.errorClassificator, "scan "+table, fmt.Errorf("%w: %w", ErrScanningRow, err))
		}

		doc, err := DecodeDocument(body)
		if err != nil {
			log.Err(err).Str("func", "*postgresDocumentStore.Scan").Str("table", table).Msg("error decoding row")
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, remoteError(s.db.errorClassificator, "scan "+table, err)
	}

	return docs, nil
}

// Get implements [DocumentStore].
func (s *postgresDocumentStore) Get(ctx context.Context, table string, id int64, fields ...string) (Document, error) {
	sqlStr, args, err := s.builder.
		Select("body").
		From(documentsTable).
		Where(sq.Eq{"table_name": table}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var body []byte
	err = s.db.QueryRowContext(ctx, sqlStr, args...).Scan(&body)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrDocumentNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*postgresDocumentStore.Get").Str("table", table).Msg("error executing query")
		return nil, remoteError(s.db.errorClassificator, "get "+table, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	doc, err := DecodeDocument(body)
	if err != nil {
		return nil, err
	}

	return doc.Project(fields...), nil
}

// Put implements [DocumentStore] as an upsert on (table_name, id).
func (s *postgresDocumentStore) Put(ctx context.Context, table string, doc Document) error {
	id, err := doc.ID()
	if err != nil {
		return err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sqlStr, args, err := s.builder.
		Insert(documentsTable).
		Columns("table_name", "id", "body", "updated_at").
		Values(table, id, body, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (table_name, id) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, sqlStr, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresDocumentStore.Put").Str("table", table).Int64("id", id).Msg("error executing statement")
		return remoteError(s.db.errorClassificator, "put "+table, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return nil
}

// Delete implements [DocumentStore].
func (s *postgresDocumentStore) Delete(ctx context.Context, table string, id int64) error {
	sqlStr, args, err := s.builder.
		Delete(documentsTable).
		Where(sq.Eq{"table_name": table}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, sqlStr, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresDocumentStore.Delete").Str("table", table).Int64("id", id).Msg("error executing statement")
		return remoteError(s.db.errorClassificator, "delete "+table, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return nil
}
