package render

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/0xalexb/edat/parse"
	"github.com/0xalexb/edat/table"
)

const indentUnit = "    "

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Diagnostic writes d followed by the offending line and a caret under the
// reported column:
//
//	app.edat:3:9: error: expected '=' after type "int"
//	    n : int "3"
//	            ^
func Diagnostic(w io.Writer, d *parse.Diagnostic, c *Colors) error {
	if c == nil {
		c = NoColors()
	}

	src := d.Source
	if src == "" {
		src = "<input>"
	}

	sev := c.Warning
	if d.Severity == parse.SeverityError {
		sev = c.Error
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s:%d:%d: %s: %s\n", src, d.Line, d.Column, sev(d.Severity.String()), d.Message)

	if d.LineText != "" {
		fmt.Fprintf(&b, "%s%s\n", indentUnit, d.LineText)
		fmt.Fprintf(&b, "%s%s%s\n", indentUnit, caretPad(d.LineText, d.Column), c.Caret("^"))
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write diagnostic: %w", err)
	}

	return nil
}

// caretPad returns the blanks that put a caret under column col of line,
// keeping tabs so the caret lines up in a terminal.
func caretPad(line string, col int) string {
	n := min(max(col-1, 0), len(line))

	pad := []byte(line[:n])
	for i, ch := range pad {
		if ch != '\t' {
			pad[i] = ' '
		}
	}

	return string(pad)
}

// Table writes t as an indented tree, one field per line:
//
//	name : string = "example"
//	base = {
//	    x : int = 1
//	}
func Table(w io.Writer, t *table.Table, c *Colors) error {
	if c == nil {
		c = NoColors()
	}

	var b strings.Builder

	writeTable(&b, t, c, 0)

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

func writeTable(b *strings.Builder, t *table.Table, c *Colors, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	for _, f := range t.Fields() {
		v, _ := t.Value(f.Name)

		if sub, ok := v.(*table.Table); ok {
			fmt.Fprintf(b, "%s%s %s %s\n", indent, c.Name(f.Name), c.Punct("="), c.Punct("{"))
			writeTable(b, sub, c, depth+1)
			fmt.Fprintf(b, "%s%s\n", indent, c.Punct("}"))

			continue
		}

		fmt.Fprintf(b, "%s%s %s %s %s %s\n",
			indent, c.Name(f.Name), c.Punct(":"), c.Type(TypeName(f.Type)), c.Punct("="), c.Value(FormatValue(v)))
	}
}

// TypeName returns the Go name of typ, or "<nil>".
func TypeName(typ reflect.Type) string {
	if typ == nil {
		return "<nil>"
	}

	return typ.String()
}

// FormatValue renders v on one line. Strings are quoted; slices are
// written as bracketed comma-separated lists.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", x)
	case time.Duration:
		return x.String()
	case *table.Table:
		return fmt.Sprintf("{%d fields}", x.Len())
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Sprint(v)
	}

	parts := make([]string, rv.Len())
	for i := range rv.Len() {
		parts[i] = FormatValue(rv.Index(i).Interface())
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
