package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one submission to validate: the self-reported facts plus the
// supporting document files, keyed by declared document type.
type Case struct {
	Personal PersonalInfo `json:"personal" yaml:"personal"`
	Academic AcademicInfo `json:"academic" yaml:"academic"`

	// Documents maps a declared document type to a local file path
	// (pdf, html or plain text) handed to the extraction layer.
	Documents map[DocType]string `json:"documents,omitempty" yaml:"documents,omitempty"`

	// Extracted optionally points at a JSON file containing documents
	// already reduced by an upstream extraction service. Entries there
	// take precedence over file paths of the same type.
	Extracted string `json:"extracted,omitempty" yaml:"extracted,omitempty"`
}

// LoadCase reads a case file (YAML) from disk
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}

	var c Case
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse case file: %w", err)
	}

	for docType := range c.Documents {
		if _, ok := ParseDocType(string(docType)); !ok {
			return nil, fmt.Errorf("unknown document type %q in case file", docType)
		}
	}

	return &c, nil
}
