package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// memoryDocumentStore is an in-process [DocumentStore]. Contents are lost
// when the process exits.
type memoryDocumentStore struct {
	mu     sync.RWMutex
	tables map[string]map[int64]Document
}

// NewMemoryDocumentStore returns an empty in-memory [DocumentStore].
func NewMemoryDocumentStore() DocumentStore {
	return &memoryDocumentStore{tables: make(map[string]map[int64]Document)}
}

// Scan implements [DocumentStore].
func (s *memoryDocumentStore) Scan(ctx context.Context, table string, filter Filter) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, remoteContextError("scan "+table, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0, len(s.tables[table]))
	for _, doc := range s.tables[table] {
		if filter.Matches(doc) {
			docs = append(docs, doc.Project())
		}
	}
	SortByID(docs)

	return docs, nil
}

// Get implements [DocumentStore].
func (s *memoryDocumentStore) Get(ctx context.Context, table string, id int64, fields ...string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, remoteContextError("get "+table, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.tables[table][id]
	if !ok {
		return nil, ErrDocumentNotFound
	}

	return doc.Project(fields...), nil
}

// Put implements [DocumentStore].
func (s *memoryDocumentStore) Put(ctx context.Context, table string, doc Document) error {
	if err := ctx.Err(); err != nil {
		return remoteContextError("put "+table, err)
	}

	id, err := doc.ID()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tables[table] == nil {
		s.tables[table] = make(map[int64]Document)
	}
	s.tables[table][id] = doc.Project()

	return nil
}

// Delete implements [DocumentStore].
func (s *memoryDocumentStore) Delete(ctx context.Context, table string, id int64) error {
	if err := ctx.Err(); err != nil {
		return remoteContextError("delete "+table, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tables[table], id)
	return nil
}

func remoteContextError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", ErrRemoteTransient, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrRemote, op, err)
}
