// AngelaMos | 2026
// embed.go

package platform

import (
	"embed"
)

// Migrations holds the SQL schema, applied with goose at startup.
//
//go:embed migrations/*.sql
var Migrations embed.FS
