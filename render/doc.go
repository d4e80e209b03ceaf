// Package render writes tables and parse diagnostics for people to read.
//
// Output is plain text. Colors decides how each element is styled: NoColors
// leaves text unchanged, NewColors uses ANSI escapes and AutoColor picks
// one of the two depending on whether the destination is a terminal.
package render
