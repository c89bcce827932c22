// Package migrations встраивает SQL миграции схемы журнала вместимости
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
