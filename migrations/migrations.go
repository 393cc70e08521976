// Package migrations embeds the SQL schema migrations applied by the
// migration runner at startup.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
