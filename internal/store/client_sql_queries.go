// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	putLocalValue = `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	getLocalValue = `
		SELECT value
		FROM kv
		WHERE key = ?;`

	deleteLocalValue = `
		DELETE FROM kv
		WHERE key = ?;`
)
