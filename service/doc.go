// Package service serves the edat parser over HTTP.
//
// Routes:
//
//	POST /v1/parse   parse the request body; ?name= sets the document name
//	GET  /v1/types   list the registered type names
//	GET  /healthz    liveness
//
// A parse answers 200 when the document has no error diagnostics and 422
// otherwise; both carry the table and the diagnostics:
//
//	{
//	  "valid": false,
//	  "table": {"name": "example"},
//	  "diagnostics": [
//	    {"severity": "error", "kind": "InvalidValue", "message": "...",
//	     "source": "app.edat", "line": 2, "column": 13}
//	  ]
//	}
//
// Bodies over Config.MaxBodySize get 413. Module registers the handler with
// fx under a listener name so listener.NewModule can serve it.
package service
