// Package migrations embeds the goose SQL migrations so the server can migrate
// on boot and integration tests can build their schema without a filesystem path.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass it to goose.NewProvider.
//
//go:embed *.sql
var FS embed.FS
