// Package db carries the PostgreSQL schema so tools and tests can apply it
// without a filesystem path to the repository.
package db

import _ "embed"

//go:embed schema.sql
var Schema string
