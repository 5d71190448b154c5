package newstr

import (
	"database/sql/driver"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler. encoding/json uses it too.
func (s String[P]) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *String[P]) UnmarshalText(text []byte) error {
	v, err := New[P](string(text))
	if err != nil {
		return err
	}

	*s = v

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s String[P]) MarshalYAML() (any, error) {
	return s.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted.
func (s *String[P]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("newstr: cannot decode YAML node of kind %d into %s", node.Kind, nameOf[P]())
	}

	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}

	return s.UnmarshalText([]byte(raw))
}

// Value implements driver.Valuer.
func (s String[P]) Value() (driver.Value, error) {
	return s.value, nil
}

// Scan implements sql.Scanner. NULL scans into the zero value.
func (s *String[P]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = String[P]{}
		return nil
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	default:
		return fmt.Errorf("newstr: cannot scan %T into %s", src, nameOf[P]())
	}
}
