package audit

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// ConfigSchema returns a JSON Schema (Draft 7) describing the YAML config
// file accepted by [Config.Resolve].
func ConfigSchema() *jsonschema.Schema {
	stringValues := &jsonschema.Schema{
		Type: "object",
		AdditionalProperties: &jsonschema.Schema{
			Type: "string",
		},
	}

	return &jsonschema.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       "scriptaudit configuration",
		Description: "Inventory, report, and scan settings for scriptaudit.",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"inventory": {
				Type:        "string",
				Description: "Path to the Excel inventory workbook.",
			},
			"report": {
				Type:        "string",
				Description: "Path of the Excel report to write (empty skips writing).",
			},
			"leader": {
				Type:        "string",
				MinLength:   ptr(1),
				MaxLength:   ptr(1),
				Description: "Comment-leader character for comment headers.",
			},
			"folders": {
				Type:        "array",
				Description: "Script directories to scan.",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"path": {Type: "string"},
						"type": {
							Type: "string",
							Enum: []any{string(FolderPython), string(FolderJava)},
						},
					},
					Required: []string{"path", "type"},
				},
			},
			"columns": {
				Type:                 stringValues.Type,
				AdditionalProperties: stringValues.AdditionalProperties,
				Description:          "Inventory column name to extracted field name.",
			},
			"java_keys": {
				Type:                 stringValues.Type,
				AdditionalProperties: stringValues.AdditionalProperties,
				Description:          "Lowercased Java header key to extracted field name.",
			},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
