package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema []byte

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Checks required fields, enums and minimums, enough for the schema generated from Config.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal(embeddedSchema, &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}
	return verify(&schema, cfg)
}

func verify(schema *jsonschema.Schema, cfg *Config) error {
	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root, err := resolve(schema, schema)
	if err != nil {
		return err
	}
	if err := verifyObject(schema, root, configMap, ""); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// verifyObject checks the value against object schema, recursively
func verifyObject(root, s *jsonschema.Schema, value map[string]any, path string) error {
	for _, name := range s.Required {
		v, ok := value[name]
		if !ok || (v == nil && !isArray(root, s, name)) {
			return fmt.Errorf("%s is required", join(path, name))
		}
		if str, isStr := v.(string); isStr && str == "" {
			return fmt.Errorf("%s is required", join(path, name))
		}
	}

	if s.Properties == nil {
		return nil
	}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		prop, err := resolve(root, pair.Value)
		if err != nil {
			return err
		}
		v, ok := value[pair.Key]
		if !ok || v == nil {
			continue
		}
		name := join(path, pair.Key)

		if len(prop.Enum) > 0 && !slices.Contains(prop.Enum, v) {
			return fmt.Errorf("%s must be one of %v, got %v", name, prop.Enum, v)
		}
		if prop.Minimum != "" {
			minVal, err := prop.Minimum.Float64()
			if err != nil {
				return fmt.Errorf("bad minimum for %s: %w", name, err)
			}
			if num, isNum := v.(float64); isNum && num < minVal {
				return fmt.Errorf("%s must be at least %v, got %v", name, minVal, num)
			}
		}
		if obj, isObj := v.(map[string]any); isObj {
			if err := verifyObject(root, prop, obj, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolve follows local $ref to $defs
func resolve(root, s *jsonschema.Schema) (*jsonschema.Schema, error) {
	if s.Ref == "" {
		return s, nil
	}
	name := strings.TrimPrefix(s.Ref, "#/$defs/")
	def, ok := root.Definitions[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema reference %s", s.Ref)
	}
	return def, nil
}

// isArray checks if the property is an array, null is a valid empty array
func isArray(root, s *jsonschema.Schema, name string) bool {
	if s.Properties == nil {
		return false
	}
	prop, ok := s.Properties.Get(name)
	if !ok {
		return false
	}
	if prop, err := resolve(root, prop); err == nil {
		return prop.Type == "array"
	}
	return false
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
