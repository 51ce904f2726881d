package summaryfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads the summary document from disk.
type Loader struct {
	filePath string
}

// NewLoader creates a new summary file loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads and parses the summary file. JSON files parse as well.
func (l *Loader) Load() (*Document, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse summary file: %w", err)
	}

	return &doc, nil
}
