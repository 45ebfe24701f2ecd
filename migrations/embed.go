// Package migrations holds the Postgres schema for the pool document store.
package migrations

import "embed"

// FS is read by a goose Provider in repo.Open and in the Postgres tests.
//
//go:embed *.sql
var FS embed.FS
