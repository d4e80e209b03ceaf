package render

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Colors styles each element of the output. Every function formats like
// fmt.Sprintf.
type Colors struct {
	Name    func(string, ...any) string
	Type    func(string, ...any) string
	Value   func(string, ...any) string
	Punct   func(string, ...any) string
	Warning func(string, ...any) string
	Error   func(string, ...any) string
	Caret   func(string, ...any) string
}

func plainText(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}

	return sprintf(format, args...)
}

// NoColors returns Colors that leave text unchanged.
func NoColors() *Colors {
	return &Colors{
		Name:    plainText,
		Type:    plainText,
		Value:   plainText,
		Punct:   plainText,
		Warning: plainText,
		Error:   plainText,
		Caret:   plainText,
	}
}

// NewColors returns ANSI colors. They are emitted even when the process
// output is not a terminal.
func NewColors() *Colors {
	styled := func(c *color.Color) func(string, ...any) string {
		c.EnableColor()
		f := c.SprintfFunc()

		return func(format string, args ...any) string {
			if len(args) == 0 {
				return f(strings.ReplaceAll(format, "%", "%%"))
			}

			return f(format, args...)
		}
	}

	return &Colors{
		Name:    styled(color.RGB(196, 96, 16)),   //nolint:mnd // rgb
		Type:    styled(color.RGB(74, 92, 138)),   //nolint:mnd // rgb
		Value:   styled(color.RGB(8, 196, 16)),    //nolint:mnd // rgb
		Punct:   styled(color.RGB(196, 128, 128)), //nolint:mnd // rgb
		Warning: styled(color.New(color.FgYellow, color.Bold)),
		Error:   styled(color.New(color.FgRed, color.Bold)),
		Caret:   styled(color.New(color.FgGreen, color.Bold)),
	}
}

// AutoColor returns NewColors when f is a terminal and NoColors otherwise.
func AutoColor(f *os.File) *Colors {
	if f != nil && isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}

	return NoColors()
}
