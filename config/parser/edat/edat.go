package edat

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/edat/encode"
	"github.com/0xalexb/edat/parse"

	"github.com/goccy/go-yaml"
)

var (
	// ErrEmptyData is returned when the input data is empty.
	ErrEmptyData = errors.New("empty data")
	// ErrPathNotFound is returned when the path does not name a field.
	ErrPathNotFound = errors.New("path not found")
	// ErrInvalidDocument is returned when the document has error diagnostics.
	ErrInvalidDocument = errors.New("invalid edat document")
)

// Parser implements config.Parser for edat documents.
type Parser struct {
	opts []parse.Option
}

// NewParser creates a parser. opts are passed to parse.Parse, e.g. to
// register extra converters or to log warnings.
func NewParser(opts ...parse.Option) *Parser {
	return &Parser{opts: opts}
}

// Parse decodes data into target. path selects a nested table with ':'
// separated field names; an empty path decodes the whole document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	tbl, err := parse.Parse(data, p.opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	doc, err := encode.YAML(tbl)
	if err != nil {
		return fmt.Errorf("converting document: %w", err)
	}

	if path == "" {
		err = yaml.Unmarshal(doc, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(doc), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath turns "server:http" into "$.server.http".
func convertToYAMLPath(path string) string {
	return "$." + strings.Join(strings.Split(path, ":"), ".")
}
