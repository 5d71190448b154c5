package decl

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File. Unknown keys are rejected so that a
// misspelled strategy is not silently ignored.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}

	if f.Output == "" {
		f.Output = DefaultOutput
	}

	if f.Runtime == "" {
		f.Runtime = DefaultRuntime
	}

	for i := range f.Types {
		t := &f.Types[i]
		t.Name = strings.TrimSpace(t.Name)
		t.Predicate = strings.TrimSpace(t.Predicate)
		t.Parse = strings.TrimSpace(t.Parse)
		t.Regexp = strings.TrimSpace(t.Regexp)
		t.Expr = strings.TrimSpace(t.Expr)
		t.Doc = strings.TrimSpace(t.Doc)

		for j, c := range t.Derive {
			t.Derive[j] = strings.ToLower(strings.TrimSpace(c))
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal declarations: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write declaration file %s: %w", path, err)
	}

	return nil
}

// Single builds a File holding one declaration, as given on the command line.
func Single(t TypeDecl) *File {
	f := &File{Types: []TypeDecl{t}}
	applyDefaults(f)

	return f
}
