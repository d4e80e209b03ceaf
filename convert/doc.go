// Package convert maps the type names written in edat documents to
// converters that turn raw text into typed table values.
//
// A Registry binds each type name to exactly one Converter, and each
// Converter stores exactly one Go type. Default returns a registry with
// the built-in types:
//
//	int       int
//	int64     int64
//	uint      uint
//	float     float64
//	float32   float32
//	bool      bool
//	str       string
//	duration  time.Duration
//	expr      float64, evaluated with github.com/expr-lang/expr
//
// Built-ins are ordinary registrations and can be replaced:
//
//	reg := convert.Default()
//	_ = reg.Register("int", convert.Func(func(s string) (int, error) {
//	    return strconv.Atoi(strings.ReplaceAll(s, "_", ""))
//	}))
//
// Array fields are stored as a slice of the converter's type, so "int[]"
// produces []int.
package convert
