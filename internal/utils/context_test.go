// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	traceID, ok := GetTraceIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, traceID)
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	_, ok := GetTraceIDFromContext(ctx)
	assert.False(t, ok)
}

func TestWithTrace_AttachesIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	ctx := WithTrace(context.Background(), log, NewUUIDGenerator())

	traceID, ok := GetTraceIDFromContext(ctx)
	require.True(t, ok)
	_, err := uuid.Parse(traceID)
	require.NoError(t, err)

	logger.FromContext(ctx).Info().Msg("action")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, traceID, entry["trace_id"])
}

func TestWithTrace_DistinctIDs(t *testing.T) {
	gen := NewUUIDGenerator()
	first, _ := GetTraceIDFromContext(WithTrace(context.Background(), logger.Nop(), gen))
	second, _ := GetTraceIDFromContext(WithTrace(context.Background(), logger.Nop(), gen))

	assert.NotEqual(t, first, second)
}
