package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Checks every section and field known to the schema is present in the config.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	return verify(cfg, []byte(embeddedSchema))
}

func verify(cfg *Config, schemaData []byte) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal(schemaData, &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root := resolveRef(&schema, &schema)
	if root == nil || root.Properties == nil {
		return fmt.Errorf("schema has no config properties")
	}

	var missing []string
	for pair := root.Properties.Oldest(); pair != nil; pair = pair.Next() {
		section, ok := configMap[pair.Key].(map[string]any)
		if !ok {
			missing = append(missing, pair.Key)
			continue
		}
		sectionSchema := resolveRef(&schema, pair.Value)
		if sectionSchema == nil || sectionSchema.Properties == nil {
			continue
		}
		for field := sectionSchema.Properties.Oldest(); field != nil; field = field.Next() {
			if _, ok := section[field.Key]; !ok {
				missing = append(missing, pair.Key+"."+field.Key)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("config is out of sync with schema, missing %s", strings.Join(missing, ", "))
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// resolveRef follows a local "#/$defs/Name" reference
func resolveRef(root, s *jsonschema.Schema) *jsonschema.Schema {
	if s == nil || s.Ref == "" {
		return s
	}
	name := strings.TrimPrefix(s.Ref, "#/$defs/")
	if def, ok := root.Definitions[name]; ok {
		return def
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if cfg.Fetch.Timeout == 0 {
		return fmt.Errorf("fetch.timeout is required")
	}
	if cfg.Scheduler.Tick == 0 {
		return fmt.Errorf("scheduler.tick is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
