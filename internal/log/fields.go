// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"

	// Enum fields
	FieldType     = "type"
	FieldKey      = "key"
	FieldValue    = "value"
	FieldContract = "contract"
	FieldBinding  = "binding"
	FieldCount    = "count"

	// Catalog fields
	FieldPath   = "path"
	FieldFormat = "format"
	FieldOutput = "output"
)
