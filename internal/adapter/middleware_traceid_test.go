package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/internal/utils"
)

func TestWithTraceID(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get(traceIDHeader))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	couch := NewCouchDBDocumentStore(CouchDBConfig{BaseURL: srv.URL}, logger.Nop())

	traced := utils.WithTrace(context.Background(), logger.Nop(), utils.NewUUIDGenerator())
	traceID, ok := utils.GetTraceIDFromContext(traced)
	require.True(t, ok)

	require.NoError(t, couch.EnsureDatabases(traced, "users"))
	require.NoError(t, couch.EnsureDatabases(context.Background(), "turmas"))

	assert.Equal(t, []string{traceID, ""}, got)
}
