// Package edat decodes edat documents into Go structs for the config
// package.
//
// The document is parsed with package parse, converted to YAML with
// package encode and decoded with github.com/goccy/go-yaml, so targets use
// `yaml` struct tags. Nested tables map to nested structs; duration fields
// decode into time.Duration.
//
// Usage:
//
//	parser := edat.NewParser()
//	var cfg ListenerConfig
//	err := parser.Parse(data, &cfg, "server:http")
//
// Path Conversion:
//   - Empty path "" -> decode the whole document
//   - Single key "key" -> "$.key"
//   - Nested path "server:http" -> "$.server.http"
//
// A document with error diagnostics is rejected with ErrInvalidDocument;
// the returned error also matches the parse.Err* sentinels.
package edat
