package table

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
)

// Field describes where a named value is stored inside a Table.
type Field struct {
	Name string
	Type reflect.Type
	Pool int
	Slot int
}

// Table is a heterogeneous record store. The zero value is an empty table
// ready to use.
type Table struct {
	fields []Field
	index  map[string]int
	types  map[reflect.Type]int
	pools  []storage
}

// New returns an empty Table.
func New() *Table {
	return &Table{
		fields: nil,
		index:  map[string]int{},
		types:  map[reflect.Type]int{},
		pools:  nil,
	}
}

// Set stores v under name.
//
// An existing field of the same type is overwritten in place and keeps its
// position. An existing field of another type is left untouched and Set
// returns an error wrapping ErrTypeConflict. A new field is appended after
// all existing ones.
func Set[T any](t *Table, name string, v T) error {
	if t == nil {
		return ErrNilTable
	}

	if name == "" {
		return ErrEmptyName
	}

	typ := reflect.TypeFor[T]()

	if i, ok := t.index[name]; ok {
		f := t.fields[i]
		if f.Type != typ {
			return fmt.Errorf("%w: field %q holds %s, cannot store %s", ErrTypeConflict, name, f.Type, typ)
		}

		p, ok := t.pools[f.Pool].(*pool[T])
		if !ok {
			return fmt.Errorf("%w: field %q pool does not hold %s", ErrTypeConflict, name, typ)
		}

		p.put(f.Slot, v)

		return nil
	}

	pi, p := poolFor[T](t, typ)
	slot := p.append(v)

	if t.index == nil {
		t.index = map[string]int{}
	}

	t.index[name] = len(t.fields)
	t.fields = append(t.fields, Field{Name: name, Type: typ, Pool: pi, Slot: slot})

	return nil
}

// poolFor finds the pool for typ, creating it on first use.
func poolFor[T any](t *Table, typ reflect.Type) (int, *pool[T]) {
	if pi, ok := t.types[typ]; ok {
		p, _ := t.pools[pi].(*pool[T])

		return pi, p
	}

	if t.types == nil {
		t.types = map[reflect.Type]int{}
	}

	p := newPool[T]()
	pi := len(t.pools)
	t.types[typ] = pi
	t.pools = append(t.pools, p)

	return pi, p
}

func lookup[T any](t *Table, name string) (*pool[T], int, bool) {
	if t == nil {
		return nil, 0, false
	}

	i, ok := t.index[name]
	if !ok {
		return nil, 0, false
	}

	f := t.fields[i]

	p, ok := t.pools[f.Pool].(*pool[T])
	if !ok {
		return nil, 0, false
	}

	return p, f.Slot, true
}

// Get returns the value stored under name if it exists with type exactly T.
func Get[T any](t *Table, name string) (T, bool) {
	p, slot, ok := lookup[T](t, name)
	if !ok {
		var zero T

		return zero, false
	}

	return p.at(slot), true
}

// GetOr returns the value stored under name if it exists with type exactly
// T, and def otherwise.
func GetOr[T any](t *Table, name string, def T) T {
	v, ok := Get[T](t, name)
	if !ok {
		return def
	}

	return v
}

// All iterates, in insertion order, over every field whose type is exactly T.
func All[T any](t *Table) iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		if t == nil {
			return
		}

		pi, ok := t.types[reflect.TypeFor[T]()]
		if !ok {
			return
		}

		p, ok := t.pools[pi].(*pool[T])
		if !ok {
			return
		}

		for _, f := range t.fields {
			if f.Pool != pi {
				continue
			}

			if !yield(f.Name, p.at(f.Slot)) {
				return
			}
		}
	}
}

// ForEach calls fn for every field whose type is exactly T, in insertion order.
func ForEach[T any](t *Table, fn func(name string, v T)) {
	for name, v := range All[T](t) {
		fn(name, v)
	}
}

// Find returns the descriptor of the field called name.
func (t *Table) Find(name string) (Field, bool) {
	if t == nil {
		return Field{}, false
	}

	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}

	return t.fields[i], true
}

// Has reports whether a field called name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.Find(name)

	return ok
}

// TypeOf returns the value type of the field called name, or nil.
func (t *Table) TypeOf(name string) reflect.Type {
	f, ok := t.Find(name)
	if !ok {
		return nil
	}

	return f.Type
}

// Value returns the value of the field called name as an interface value.
// It is meant for generic tooling such as encoders; typed code should use Get.
func (t *Table) Value(name string) (any, bool) {
	f, ok := t.Find(name)
	if !ok {
		return nil, false
	}

	return t.pools[f.Pool].value(f.Slot), true
}

// Len returns the number of fields.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.fields)
}

// Names returns the field names in insertion order, or nil for an empty table.
func (t *Table) Names() []string {
	if t.Len() == 0 {
		return nil
	}

	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.Name
	}

	return names
}

// Fields returns a copy of the field descriptors in insertion order.
func (t *Table) Fields() []Field {
	if t == nil {
		return nil
	}

	return slices.Clone(t.fields)
}

// Lookup walks nested tables by name and returns the table at the end of
// path. An empty path returns t itself.
func (t *Table) Lookup(path ...string) (*Table, bool) {
	cur := t
	for _, name := range path {
		next, ok := Get[*Table](cur, name)
		if !ok || next == nil {
			return nil, false
		}

		cur = next
	}

	return cur, cur != nil
}

// Clone returns a deep copy of t. Nested tables, slices and maps are
// copied; the copy shares no storage with t.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}

	c := &Table{
		fields: slices.Clone(t.fields),
		index:  maps.Clone(t.index),
		types:  maps.Clone(t.types),
		pools:  make([]storage, len(t.pools)),
	}

	if c.index == nil {
		c.index = map[string]int{}
	}

	if c.types == nil {
		c.types = map[reflect.Type]int{}
	}

	for i, p := range t.pools {
		c.pools[i] = p.clone()
	}

	return c
}
