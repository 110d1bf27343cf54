package entries

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk entries document
type File struct {
	Title   string   `yaml:"title"`
	Entries []string `yaml:"entries"`
}

// LoadFile reads and validates an entries YAML file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading entries file %s: %w", path, err)
	}
	f, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("entries file %s: %w", path, err)
	}
	return f, nil
}

// LoadBytes parses an entries document from YAML bytes. Entries are trimmed
// and blanks dropped; a document with no usable entries is an error.
func LoadBytes(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	cleaned := f.Entries[:0]
	for _, e := range f.Entries {
		e = strings.TrimSpace(e)
		if e != "" {
			cleaned = append(cleaned, e)
		}
	}
	f.Entries = cleaned

	if len(f.Entries) == 0 {
		return nil, fmt.Errorf("no entries")
	}
	return &f, nil
}
