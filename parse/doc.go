// Package parse reads edat documents into tables.
//
// An edat document is a sequence of fields. Typed fields name a registered
// converter; nested tables are written in braces and may start as a deep
// copy of a sibling table with the '<-' operator:
//
//	# service settings
//	name : str = "example"
//	count : int = "3"
//	scores : float[] = "1.0", "2.5", "9.9"
//	ports : int[2] = [ 80, 443 ]
//	base = {
//	    x : int = "1"
//	    y : int = "2"
//	}
//	derived <- base = {
//	    y : int = "20"
//	    z : int = "30"
//	}
//
// Fields end with ';', a line break or the end of input. Values are either
// double-quoted raw text (no escapes) or a bare run of characters without
// whitespace, ',', ';', ']', '}', '#' or '"'. Array fields take a bracketed
// list, which may span lines, or a comma-separated list on one line. A
// size inside the brackets of the type is enforced.
//
// # Diagnostics
//
// Problems are reported as Diagnostic values to the Sink given with
// WithSink. Unknown type names and missing prototypes are warnings: the
// field is skipped, or the table starts empty, and parsing continues.
// Values rejected by their converter, type conflicts and array size
// mismatches are errors that drop the field. Malformed syntax stops the
// parse: the innermost table keeps the fields read so far, every enclosing
// table keeps its own, and nothing after the error is read.
//
// Parse always returns a table. Its error joins the error diagnostics and
// supports errors.Is with the Err* sentinels:
//
//	tbl, err := parse.ParseString(src, parse.WithName("app.edat"))
//	if errors.Is(err, parse.ErrMalformedSyntax) {
//	    // tbl holds the fields before the error
//	}
package parse
