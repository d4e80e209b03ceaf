package parse

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/0xalexb/edat/convert"
	"github.com/0xalexb/edat/table"
)

// Parser turns edat documents into tables. A Parser is immutable after New
// and may be shared; each call to Parse keeps its own state.
type Parser struct {
	registry *convert.Registry
	sink     Sink
	logger   *slog.Logger
	name     string
}

// New returns a Parser configured by opts.
func New(opts ...Option) *Parser {
	p := &Parser{
		registry: nil,
		sink:     nil,
		logger:   nil,
		name:     "",
	}

	for _, apply := range opts {
		apply(p)
	}

	if p.registry == nil {
		p.registry = convert.Default()
	}

	if p.sink == nil {
		p.sink = Discard
	}

	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}

	return p
}

// Parse parses src with a Parser configured by opts.
func Parse(src []byte, opts ...Option) (*table.Table, error) {
	return New(opts...).Parse(src)
}

// ParseString parses src with a Parser configured by opts.
func ParseString(src string, opts ...Option) (*table.Table, error) {
	return New(opts...).ParseString(src)
}

// Parse parses src. See ParseString.
func (p *Parser) Parse(src []byte) (*table.Table, error) {
	return p.ParseString(string(src))
}

// ParseString parses src into a table.
//
// The returned table is never nil: on malformed input it holds everything
// parsed before the error. Every diagnostic goes to the configured Sink.
// The error joins the error-severity diagnostics as *Diagnostic values and
// is nil when only warnings were reported.
func (p *Parser) ParseString(src string) (*table.Table, error) {
	st := &state{
		p:      p,
		cur:    NewCursor(src),
		halted: false,
		errs:   nil,
	}

	root := table.New()
	st.body(root, 0)

	p.logger.Debug("document parsed",
		slog.String("source", p.name),
		slog.Int("fields", root.Len()),
		slog.Int("errors", len(st.errs)),
	)

	return root, errors.Join(st.errs...)
}

// noArray marks a typed field without an array specifier; dynamicArray
// marks "[]".
const (
	noArray      = -2
	dynamicArray = -1
)

type state struct {
	p   *Parser
	cur Cursor
	// halted is set by a scope-fatal error; no scope parses further fields.
	halted bool
	errs   []error
}

func (s *state) report(at Cursor, sev Severity, kind Kind, cause error, format string, args ...any) {
	d := Diagnostic{
		Severity: sev,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Source:   s.p.name,
		Position: at.Pos(),
		Err:      cause,
	}

	s.p.sink.Report(d)

	if sev == SeverityError {
		s.errs = append(s.errs, &d)
	}
}

// fail reports malformed syntax and stops parsing.
func (s *state) fail(at Cursor, format string, args ...any) {
	s.report(at, SeverityError, KindMalformedSyntax, nil, format, args...)
	s.halted = true
}

// skipBlank consumes whitespace, line breaks and comments.
func (s *state) skipBlank() {
	for {
		c, ws := s.cur.SkipWhitespace()
		c, cm := c.SkipComment()
		c, lb := c.SkipLineBreaks()
		s.cur = c

		if !ws && !cm && !lb {
			return
		}
	}
}

// body parses fields into t until '}' closes a nested scope or the input
// ends at the root.
func (s *state) body(t *table.Table, depth int) {
	for !s.halted {
		s.skipBlank()

		if s.cur.EOF() {
			if depth > 0 {
				s.fail(s.cur, "unexpected end of input: table is not closed with '}'")
			}

			return
		}

		if c, ok := s.cur.SkipByte('}'); ok {
			if depth == 0 {
				s.fail(s.cur, "unexpected '}' with no open table")

				return
			}

			s.cur = c

			return
		}

		s.field(t, depth)
	}
}

func (s *state) field(t *table.Table, depth int) {
	c, name := s.cur.Name()
	if name == "" {
		s.fail(s.cur, "expected field name")

		return
	}

	c, _ = c.SkipWhitespace()

	if next, ok := c.SkipByte(':'); ok {
		s.cur = next
		s.typedField(t, name)
	} else {
		s.cur = c
		s.tableField(t, name, depth)
	}

	if s.halted {
		return
	}

	s.terminator()
}

func (s *state) typedField(t *table.Table, name string) {
	c, _ := s.cur.SkipWhitespace()
	typeAt := c

	c, typeName := c.Name()
	if typeName == "" {
		s.fail(c, "expected type name after ':'")

		return
	}

	size := noArray

	if next, ok := c.SkipByte('['); ok {
		next, digits := next.Take(isDigit)

		end, ok := next.SkipByte(']')
		if !ok {
			s.fail(next, "expected ']' to close the array specifier")

			return
		}

		size = dynamicArray

		if digits != "" {
			n, err := strconv.Atoi(digits)
			if err != nil {
				s.fail(next, "invalid array size %q", digits)

				return
			}

			size = n
		}

		c = end
	}

	c, _ = c.SkipWhitespace()

	c, ok := c.SkipByte('=')
	if !ok {
		s.fail(c, "expected '=' after type %q", typeName)

		return
	}

	s.cur, _ = c.SkipWhitespace()
	valueAt := s.cur

	conv, known := s.p.registry.Resolve(typeName)

	if size == noArray {
		raw, ok := s.value()
		if !ok {
			return
		}

		if !known {
			s.unknownType(typeAt, typeName, name)

			return
		}

		s.store(valueAt, name, conv.SetValue(t, name, raw))

		return
	}

	raws, ok := s.array()
	if !ok {
		return
	}

	if !known {
		s.unknownType(typeAt, typeName, name)

		return
	}

	if size >= 0 && len(raws) != size {
		s.report(valueAt, SeverityError, KindArraySizeMismatch, nil,
			"field %q declares %d elements but has %d", name, size, len(raws))

		return
	}

	s.store(valueAt, name, conv.SetArray(t, name, raws))
}

func (s *state) unknownType(at Cursor, typeName, field string) {
	s.report(at, SeverityWarning, KindUnknownTypeName, nil,
		"no converter for type %q, skipping field %q", typeName, field)
}

// store turns a failed Set into a recoverable diagnostic.
func (s *state) store(at Cursor, name string, err error) {
	if err == nil {
		return
	}

	kind := KindInvalidValue
	if errors.Is(err, table.ErrTypeConflict) {
		kind = KindTypeConflict
	}

	s.report(at, SeverityError, kind, err, "cannot set field %q: %v", name, err)
}

// value consumes one quoted or bare value.
func (s *state) value() (string, bool) {
	if c, raw, ok := s.cur.Quoted(); ok {
		s.cur = c

		return raw, true
	}

	if b, ok := s.cur.Peek(); ok && b == '"' {
		s.fail(s.cur, "quoted value is not terminated")

		return "", false
	}

	c, raw := s.cur.Bare()
	if raw == "" {
		s.fail(s.cur, "expected value")

		return "", false
	}

	s.cur = c

	return raw, true
}

// array consumes either a bracketed list, which may span lines, or a
// comma-separated list on the current line.
func (s *state) array() ([]string, bool) {
	c, bracketed := s.cur.SkipByte('[')
	if !bracketed {
		return s.bareList()
	}

	s.cur = c
	raws := []string{}

	for {
		s.skipBlank()

		if c, ok := s.cur.SkipByte(']'); ok {
			s.cur = c

			return raws, true
		}

		if s.cur.EOF() {
			s.fail(s.cur, "unexpected end of input: array is not closed with ']'")

			return nil, false
		}

		raw, ok := s.value()
		if !ok {
			return nil, false
		}

		raws = append(raws, raw)

		s.skipBlank()

		if c, ok := s.cur.SkipByte(','); ok {
			s.cur = c

			continue
		}

		if c, ok := s.cur.SkipByte(']'); ok {
			s.cur = c

			return raws, true
		}

		s.fail(s.cur, "expected ',' or ']' in array")

		return nil, false
	}
}

func (s *state) bareList() ([]string, bool) {
	var raws []string

	for {
		raw, ok := s.value()
		if !ok {
			return nil, false
		}

		raws = append(raws, raw)

		c, _ := s.cur.SkipWhitespace()

		next, ok := c.SkipByte(',')
		if !ok {
			s.cur = c

			return raws, true
		}

		s.cur, _ = next.SkipWhitespace()
	}
}

func (s *state) tableField(t *table.Table, name string, depth int) {
	c := s.cur

	var (
		proto   string
		protoAt Cursor
	)

	if next, ok := c.SkipString("<-"); ok {
		next, _ = next.SkipWhitespace()
		protoAt = next

		next, proto = next.Name()
		if proto == "" {
			s.fail(next, "expected prototype table name after '<-'")

			return
		}

		c, _ = next.SkipWhitespace()
	}

	c, ok := c.SkipByte('=')
	if !ok {
		if proto != "" {
			s.fail(c, "expected '=' after prototype %q", proto)
		} else {
			s.fail(c, "expected ':' or '=' after field name %q", name)
		}

		return
	}

	s.cur = c
	s.skipBlank()

	c, ok = s.cur.SkipByte('{')
	if !ok {
		s.fail(s.cur, "expected '{' to open table %q", name)

		return
	}

	s.cur = c

	sub := table.New()

	if proto != "" {
		base, found := table.Get[*table.Table](t, proto)
		if found && base != nil {
			sub = base.Clone()
		} else {
			s.report(protoAt, SeverityWarning, KindPrototypeNotFound, nil,
				"prototype %q is not a table in this scope, starting %q empty", proto, name)
		}
	}

	s.body(sub, depth+1)

	s.p.logger.Debug("table parsed",
		slog.String("source", s.p.name),
		slog.String("table", name),
		slog.String("prototype", proto),
		slog.Int("depth", depth+1),
		slog.Int("fields", sub.Len()),
	)

	s.store(c, name, table.Set(t, name, sub))
}

// terminator consumes ';', a comment and/or line breaks after a field. A
// following '}' or the end of input also ends the field.
func (s *state) terminator() {
	c, _ := s.cur.SkipWhitespace()

	if next, ok := c.SkipByte(';'); ok {
		s.cur = next

		return
	}

	c, _ = c.SkipComment()

	if next, ok := c.SkipLineBreaks(); ok {
		s.cur = next

		return
	}

	if b, ok := c.Peek(); !ok || b == '}' {
		s.cur = c

		return
	}

	s.fail(c, "expected ';' or line break after field")
}
