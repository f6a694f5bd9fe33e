// Package migrations embeds the goose SQL migrations so that the operator CLI
// and the integration test helper apply exactly the same schema.
package migrations

import "embed"

// FS holds every *.sql migration in lexical (version) order.
//
//go:embed *.sql
var FS embed.FS
