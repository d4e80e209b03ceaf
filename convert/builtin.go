package convert

import (
	"strconv"
	"strings"
	"time"
)

// Default returns a new registry holding the built-in converters.
func Default() *Registry {
	reg := NewRegistry()

	builtins := map[string]Converter{
		"int":      Func(parseInt),
		"int64":    Func(parseInt64),
		"uint":     Func(parseUint),
		"float":    Func(parseFloat),
		"float32":  Func(parseFloat32),
		"bool":     Func(parseBool),
		"str":      Func(parseString),
		"duration": Func(parseDuration),
		"expr":     Expr(nil),
	}

	for name, c := range builtins {
		_ = reg.Register(name, c)
	}

	return reg
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s)) //nolint:wrapcheck // wrapped by the converter
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64) //nolint:wrapcheck // wrapped by the converter
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, strconv.IntSize)

	return uint(v), err //nolint:wrapcheck // wrapped by the converter
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64) //nolint:wrapcheck // wrapped by the converter
}

func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)

	return float32(v), err //nolint:wrapcheck // wrapped by the converter
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s)) //nolint:wrapcheck // wrapped by the converter
}

func parseString(s string) (string, error) {
	return s, nil
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(s)) //nolint:wrapcheck // wrapped by the converter
}
