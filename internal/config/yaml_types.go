package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"log-format-enforcer/primitive"
)

// UnmarshalYAML implements custom YAML unmarshaling for Field.
// Accepts:
//   - Plain name: "user"
//   - Shorthand: {user_id: int64}
//   - Full form: {name: user_id, kind: int64, key: uid}
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string

		err := node.Decode(&name)
		if err != nil {
			return err
		}

		*f = Field{Name: name}

		return nil

	case yaml.MappingNode:
		if isFullForm(node) {
			var spec fieldSpec

			err := node.Decode(&spec)
			if err != nil {
				return err
			}

			*f = Field(spec)

			return nil
		}

		return f.decodeShorthand(node)

	default:
		return fmt.Errorf("line %d: expected field name or map, got %v", node.Line, node.Kind)
	}
}

// decodeShorthand parses a single-key mapping like {latency: duration}.
func (f *Field) decodeShorthand(node *yaml.Node) error {
	if len(node.Content) != 2 {
		return fmt.Errorf("line %d: %w", node.Line,
			errors.New("expected single key-value map like {latency: duration} or a map with a name key"))
	}

	var (
		name string
		kind primitive.KindEnum
	)

	err := node.Content[0].Decode(&name)
	if err != nil {
		return fmt.Errorf("invalid field name: %w", err)
	}

	err = node.Content[1].Decode(&kind)
	if err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}

	*f = Field{Name: name, Kind: kind}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Field.
// Outputs the plain name when nothing else is set.
func (f Field) MarshalYAML() (any, error) {
	if f.Kind == 0 && f.Key == "" {
		return f.Name, nil
	}

	return fieldSpec(f), nil
}

// isFullForm reports whether a mapping node is the full field form. A single
// "name" key holding a kind, as in {name: int64}, is the shorthand for a field
// called "name".
func isFullForm(node *yaml.Node) bool {
	if len(node.Content) == 2 {
		if node.Content[0].Value != "name" {
			return false
		}

		_, isKind := primitive.ParseKind(node.Content[1].Value)

		return !isKind
	}

	return hasKey(node, "name")
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}

	return false
}
