// Package migrations embeds the SQL schema files applied by the sqlite backend.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
