// Package migrations содержит goose-миграции, встроенные в бинарник.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
