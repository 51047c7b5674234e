package migrations

import (
	"embed"
	"io/fs"
)

//go:embed mysql/*.sql sqlite/*.sql
var migrationFS embed.FS

// FS provides access to the embedded migration files, one directory per SQL dialect.
var FS fs.FS = migrationFS
