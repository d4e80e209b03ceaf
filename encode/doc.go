// Package encode converts tables into plain Go values, YAML and JSON.
//
// Field order is preserved: YAML output uses goccy/go-yaml MapSlice and
// JSON output writes object members in table order. Nested tables become
// nested mappings. time.Duration values are written in their string form
// ("1m30s") so they decode back into time.Duration fields.
package encode
