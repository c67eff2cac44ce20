// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/lyra-school/lyra-client/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the part of the terminal UI the lifecycle drives. [tui.TUI]
// implements it.
type UI interface {
	// LoginFlow blocks until a session is persisted. It returns
	// tui.ErrUserQuit when the user leaves the login screen.
	LoginFlow(ctx context.Context) (models.Session, error)

	// MainLoop runs the management screens. logout reports that the
	// session slot was cleared and the login screen should follow.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
