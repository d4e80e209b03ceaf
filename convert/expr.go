package convert

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Expr returns a converter that evaluates its input as an expr-lang
// expression and stores the numeric result as float64. Identifiers in the
// expression resolve against env, which may be nil.
//
//	timeout : expr = "60 * 5"
//	ratio   : expr = "scale / 3"
//
//nolint:ireturn // converters are consumed through the interface.
func Expr(env map[string]any) Converter {
	return Func(func(s string) (float64, error) {
		var runEnv any

		opts := []expr.Option{expr.AsFloat64()}
		if env != nil {
			runEnv = env
			opts = append(opts, expr.Env(env))
		}

		program, err := expr.Compile(s, opts...)
		if err != nil {
			return 0, fmt.Errorf("compiling expression: %w", err)
		}

		out, err := expr.Run(program, runEnv)
		if err != nil {
			return 0, fmt.Errorf("evaluating expression: %w", err)
		}

		v, ok := out.(float64)
		if !ok {
			return 0, fmt.Errorf("expression returned %T", out)
		}

		return v, nil
	})
}
