// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lyra-school/lyra-client/internal/store"
)

// mapStoreError translates a store error into a service business error.
// ctx is the context the store call ran under; its deadline decides
// between ErrTimeout and ErrRemote.
func mapStoreError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)

	case errors.Is(err, store.ErrDocumentNotFound):
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)

	case errors.Is(err, store.ErrPasswordHashNotFound):
		return fmt.Errorf("%w: %w", ErrStoredHashMissing, err)
	}

	return fmt.Errorf("%w: %w", ErrRemote, err)
}

// withTimeout bounds one remote call. A non-positive d leaves ctx unbounded.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
