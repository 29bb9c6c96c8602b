package section

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a section file.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "YAML"
	}
	return "JSON"
}

// FormatOf picks the file format from the extension; anything other than
// .yaml or .yml is read as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// LoadFromFile loads a section definition from a JSON or YAML file
func LoadFromFile(path string) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading section file: %w", err)
	}
	return Parse(data, FormatOf(path))
}

// Parse decodes a section, validating it against Schema before filling the struct.
func Parse(data []byte, format Format) (*Section, error) {
	unmarshal := json.Unmarshal
	if format == YAML {
		unmarshal = yaml.Unmarshal
	}

	var doc interface{}
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing section %s: %w", format, err)
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}

	var s Section
	if err := unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing section %s: %w", format, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
