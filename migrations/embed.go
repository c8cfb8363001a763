// Package migrations holds the goose SQL migrations, embedded so the server
// and migrate binaries need no files on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
