package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

//go:embed remediation.sql
var remediationSQL string

// RemediationSQL returns the idempotent DDL that brings the schema up to
// what the application expects.
func RemediationSQL() string {
	return remediationSQL
}

var instructions = []string{
	"Connect to the database with a role allowed to ALTER TABLE item_statuses.",
	"Run the remediation SQL. It is safe to run more than once.",
	"Re-run the schema check (bookhive schema-check, or GET /health/schema).",
}

func newNotice(missing []string) *domain.SchemaNotice {
	return &domain.SchemaNotice{
		RemediationSQL: remediationSQL,
		Instructions:   append([]string(nil), instructions...),
		Missing:        append([]string(nil), missing...),
	}
}

// FormatNotice renders a notice for an operator terminal.
func FormatNotice(n *domain.SchemaNotice) string {
	if n == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Schema drift detected.\n")
	if len(n.Missing) > 0 {
		b.WriteString("\nMissing columns:\n")
		for _, m := range n.Missing {
			fmt.Fprintf(&b, "  - %s\n", m)
		}
	}
	b.WriteString("\nRemediation SQL:\n\n")
	b.WriteString(strings.TrimRight(n.RemediationSQL, "\n"))
	b.WriteString("\n\nSteps:\n")
	for i, step := range n.Instructions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	return b.String()
}
