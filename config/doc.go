// Package config loads typed settings from documents.
//
// Four small interfaces make up a load:
//   - DataFetcher returns the raw document (see config/fetcher/file)
//   - Parser decodes it into a struct (see config/parser/edat)
//   - Defaulter fills unset fields
//   - Validator rejects bad values
//
// Load runs them in that order. Provider wraps Load in a constructor that
// fx can call.
//
// # Path Navigation
//
// A path picks a section of the document, with ':' between keys:
//
//	"server:http"    -> document["server"]["http"]
//	""               -> whole document
//
// # Example
//
//	type HTTPConfig struct {
//	    Address string        `yaml:"address"`
//	    Timeout time.Duration `yaml:"timeout"`
//	}
//
//	fetcher, err := filefetcher.NewFetcher("edat.edat")()
//	cfg, err := config.Load(&HTTPConfig{}, "server:http", edatparser.NewParser(), fetcher)
package config
