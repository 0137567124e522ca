// Package migrations embeds the goose migrations for the local credential
// cache database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
