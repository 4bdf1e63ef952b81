package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseOptions adjusts how a document is loaded.
type ParseOptions struct {
	// Strict forces strict validation even when the document does not ask
	// for it.
	Strict bool
}

// ParseDocument loads a document from disk and validates it.
func ParseDocument(path string, opts ParseOptions) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, prismerrors.NewParseError(path, 0, err)
	}
	return ParseBytes(path, data, opts)
}

// ParseBytes decodes and validates a document. path is used in errors only.
func ParseBytes(path string, data []byte, opts ParseOptions) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, prismerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc, opts.Strict || doc.Settings.Strict); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
