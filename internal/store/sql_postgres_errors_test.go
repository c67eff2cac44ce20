package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "connection exception wrapped", err: fmt.Errorf("query: %w", &pgconn.PgError{Code: pgerrcode.ConnectionException}), want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
		{name: "bad conn", err: driver.ErrBadConn, want: Retryable},
		{name: "deadline", err: context.DeadlineExceeded, want: Retryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestRemoteError(t *testing.T) {
	c := NewPostgresErrorClassifier()

	transient := remoteError(c, "scan users", driver.ErrBadConn)
	assert.ErrorIs(t, transient, ErrRemoteTransient)
	assert.ErrorIs(t, transient, ErrRemote)
	assert.ErrorIs(t, transient, driver.ErrBadConn)

	permanent := remoteError(c, "scan users", errors.New("boom"))
	assert.ErrorIs(t, permanent, ErrRemote)
	assert.NotErrorIs(t, permanent, ErrRemoteTransient)
}
