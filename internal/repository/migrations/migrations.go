// Package migrations holds the embedded goose schema migrations.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
