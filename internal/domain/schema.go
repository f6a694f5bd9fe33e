package domain

import "time"

// SchemaNotice is the operator-facing remediation for detected drift.
type SchemaNotice struct {
	RemediationSQL string
	Instructions   []string
	Missing        []string
}

// SchemaHealth is the result of a schema health check. Notice is set only
// when State is SchemaStateDriftDetected.
type SchemaHealth struct {
	State     SchemaState
	Notice    *SchemaNotice
	CheckedAt time.Time
}
