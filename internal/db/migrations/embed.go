// Package migrations carries the goose scripts that create the people collection.
package migrations

import "embed"

// FS is handed to goose by the sqlite repository on startup.
//
//go:embed *.sql
var FS embed.FS
