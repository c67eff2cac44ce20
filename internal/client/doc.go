// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It opens the remote credential store and the local session slot, then
// loops between the login flow and the main screens until the user quits.
package client
