// Package migrations embeds the SQL migrations applied to the local
// database at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
