// Package migrations embeds the SQL migration files for the SQLite store.
// Files are named NNN_description.up.sql / NNN_description.down.sql.
package migrations

import "embed"

// FS contains all SQL migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
