// Package migrations содержит SQL-миграции схемы, встроенные в бинарник
package migrations

import "embed"

// FS пары NNN_name.up.sql / NNN_name.down.sql для golang-migrate
//
//go:embed *.sql
var FS embed.FS
