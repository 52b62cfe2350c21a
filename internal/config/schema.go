package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// commandList is the schema fragment for an ordered list of argv
// commands.
var commandList = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "string"},
		"minItems": 1,
	},
}

var stringList = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var stringMap = map[string]any{
	"type":                 "object",
	"additionalProperties": map[string]any{"type": "string"},
}

// configSchema is the JSON Schema every matrun.yaml must satisfy
// before semantic validation runs. It catches structural mistakes
// (unknown keys, wrong types) with positions the semantic pass cannot
// give.
var configSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"project", "matrix", "test"},
	"properties": map[string]any{
		"project":      map[string]any{"type": "string", "minLength": 1},
		"local_prefix": map[string]any{"type": "string"},
		"matrix": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []any{"runtimes"},
			"properties": map[string]any{
				"runtimes": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type":                 "object",
						"additionalProperties": false,
						"required":             []any{"name"},
						"properties": map[string]any{
							"name":    map[string]any{"type": "string", "minLength": 1},
							"command": map[string]any{"type": "string"},
							"image":   map[string]any{"type": "string"},
							"env":     stringMap,
						},
					},
				},
				"frameworks": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":                 "object",
						"additionalProperties": false,
						"required":             []any{"name", "package", "ranges"},
						"properties": map[string]any{
							"name":    map[string]any{"type": "string", "minLength": 1},
							"package": map[string]any{"type": "string", "minLength": 1},
							"ranges": map[string]any{
								"type":     "array",
								"minItems": 1,
								"items":    map[string]any{"type": "string"},
							},
						},
					},
				},
				"exclude": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":                 "object",
						"additionalProperties": false,
						"properties": map[string]any{
							"runtime":   map[string]any{"type": "string"},
							"framework": map[string]any{"type": "string"},
							"range":     map[string]any{"type": "string"},
						},
					},
				},
			},
		},
		"deps": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"manifests": stringList,
				"index":     map[string]any{"type": "string"},
			},
		},
		"test": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []any{"command"},
			"properties": map[string]any{
				"backend": map[string]any{"type": "string", "enum": []any{"local", "container"}},
				"setup":   commandList,
				"command": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
				"env":      stringMap,
				"pass_env": stringList,
				"excludes": stringList,
				"timeout":  map[string]any{"type": "string"},
				"coverage": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"min": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
					},
				},
			},
		},
		"quality": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"lint":   commandList,
				"compat": commandList,
				"style": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"max_line_length": map[string]any{"type": "integer", "minimum": 1},
						"exclude":         stringList,
					},
				},
				"doccomment": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"ignore":  stringList,
						"exclude": stringList,
					},
				},
				"imports": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"local":  map[string]any{"type": "string"},
						"scopes": stringList,
					},
				},
				"fixtures": stringList,
			},
		},
		"docs": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"source":          map[string]any{"type": "string"},
				"build_dir":       map[string]any{"type": "string"},
				"max_line_length": map[string]any{"type": "integer", "minimum": 1},
				"stubs":           stringList,
				"build":           commandList,
				"env":             stringMap,
				"metadata":        stringList,
			},
		},
		"publish": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"bucket": map[string]any{"type": "string"},
				"prefix": map[string]any{"type": "string"},
			},
		},
	},
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler expects parsed JSON values, so the typed Go
		// literal round-trips through encoding/json first.
		raw, err := json.Marshal(configSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := "schema://matrun.json"
		if err := c.AddResource(url, doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(url)
	})
	return schemaCompiled, schemaErr
}

// validateRaw checks the YAML document against configSchema. The
// document is round-tripped through encoding/json first so the
// validator sees plain JSON types rather than YAML ones.
func validateRaw(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("config is empty")
	}

	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize config: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(jsonBytes, &normalized); err != nil {
		return fmt.Errorf("normalize config: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
