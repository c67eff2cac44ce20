// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides remote document store backends reached over
// HTTP. The CouchDB adapter implements [store.DocumentStore] on top of the
// CouchDB REST API: every table is a CouchDB database and every record a
// document whose _id is the decimal record id.
//
// Transport failures are mapped onto the store sentinels by mapHTTPError so
// that callers can use [errors.Is] regardless of the backend in use.
package adapter
