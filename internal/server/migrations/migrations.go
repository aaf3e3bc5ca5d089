// Package migrations embeds the SQL files goose applies on start.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
