// Package schemas provides the embedded SQL migrations for the attempt log.
package schemas

import "embed"

// Migrations holds migrations/NNN_name.sql, applied in file name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
