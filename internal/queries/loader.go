package queries

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML query file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query YAML: %w", err)
	}

	applyDefaults(&f)

	if err := validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// validate rejects structurally unusable query files. Whether each Bind
// string matches the invocation grammar is checked later, per query, so
// a grammar error can name an offset.
func validate(f *File) error {
	seen := make(map[string]struct{}, len(f.Queries))

	for i, q := range f.Queries {
		if q.Name == "" {
			return fmt.Errorf("query #%d has no name", i+1)
		}

		if q.Bind == "" {
			return fmt.Errorf("query %s has no bind invocation", q.Name)
		}

		if _, dup := seen[q.Name]; dup {
			return fmt.Errorf("duplicate query name %s", q.Name)
		}

		seen[q.Name] = struct{}{}
	}

	return nil
}

// Marshal serializes a File back to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
