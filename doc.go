// Package edat is the entry point of the edat module: an fx application
// shell that wires logging, converters, configuration and the HTTP parse
// service, plus ParseFile for one-shot use.
//
// The document format, the table store and the converters live in the
// parse, table and convert packages.
package edat
