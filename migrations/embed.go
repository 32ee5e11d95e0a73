// Package migrations embeds the SQL files that create the POI catalog schema.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
