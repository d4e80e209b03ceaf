package convert

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/0xalexb/edat/table"
)

// ErrInvalidValue is returned when a converter cannot parse its input.
var ErrInvalidValue = errors.New("invalid value")

// ErrEmptyTypeName is returned when registering a converter without a name.
var ErrEmptyTypeName = errors.New("type name must not be empty")

// ErrNilConverter is returned when registering a nil converter.
var ErrNilConverter = errors.New("converter must not be nil")

// Converter parses raw text and stores the typed result into a Table.
type Converter interface {
	// Type is the Go type of scalar values produced by the converter.
	Type() reflect.Type
	// SetValue parses raw and stores it under name.
	SetValue(t *table.Table, name, raw string) error
	// SetArray parses every element of raws and stores them under name as one slice.
	SetArray(t *table.Table, name string, raws []string) error
}

type funcConverter[T any] struct {
	parse func(string) (T, error)
}

// Func lifts a scalar parse function into a Converter storing T for scalar
// fields and []T for array fields.
//
//nolint:ireturn // converters are consumed through the interface.
func Func[T any](parse func(string) (T, error)) Converter {
	return funcConverter[T]{parse: parse}
}

func (c funcConverter[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (c funcConverter[T]) SetValue(t *table.Table, name, raw string) error {
	v, err := c.parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid %s: %w", ErrInvalidValue, raw, c.Type(), err)
	}

	return table.Set(t, name, v) //nolint:wrapcheck // table errors are part of the contract
}

func (c funcConverter[T]) SetArray(t *table.Table, name string, raws []string) error {
	values := make([]T, 0, len(raws))

	for i, raw := range raws {
		v, err := c.parse(raw)
		if err != nil {
			return fmt.Errorf("%w: element %d %q is not a valid %s: %w", ErrInvalidValue, i, raw, c.Type(), err)
		}

		values = append(values, v)
	}

	return table.Set(t, name, values) //nolint:wrapcheck // table errors are part of the contract
}

// Registry maps type names to converters.
type Registry struct {
	converters map[string]Converter
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{converters: map[string]Converter{}}
}

// Register binds name to c, replacing any previous binding.
func (r *Registry) Register(name string, c Converter) error {
	if name == "" {
		return ErrEmptyTypeName
	}

	if c == nil {
		return ErrNilConverter
	}

	if r.converters == nil {
		r.converters = map[string]Converter{}
	}

	r.converters[name] = c

	return nil
}

// Resolve returns the converter bound to name.
//
//nolint:ireturn // converters are consumed through the interface.
func (r *Registry) Resolve(name string) (Converter, bool) {
	if r == nil {
		return nil, false
	}

	c, ok := r.converters[name]

	return c, ok
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(r.converters))
}

// Clone returns a registry with the same bindings. Registering on the
// clone does not affect r.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return NewRegistry()
	}

	return &Registry{converters: maps.Clone(r.converters)}
}
