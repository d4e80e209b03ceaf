package table

import "reflect"

// storage is the type-erased view of a pool. Typed access always goes
// through a checked assertion to *pool[T].
type storage interface {
	value(slot int) any
	clone() storage
}

// pool holds every value of one type for one Table. It only grows.
type pool[T any] struct {
	values []T
}

func newPool[T any]() *pool[T] {
	return &pool[T]{values: nil}
}

func (p *pool[T]) append(v T) int {
	p.values = append(p.values, v)

	return len(p.values) - 1
}

func (p *pool[T]) at(slot int) T {
	return p.values[slot]
}

func (p *pool[T]) put(slot int, v T) {
	p.values[slot] = v
}

func (p *pool[T]) value(slot int) any {
	return p.values[slot]
}

func (p *pool[T]) clone() storage {
	c := &pool[T]{values: make([]T, len(p.values))}

	deep := needsDeepCopy(reflect.TypeFor[T]())
	for i, v := range p.values {
		if deep {
			v = cloneValue(v)
		}

		c.values[i] = v
	}

	return c
}

//nolint:gochecknoglobals // type identity used by the deep copy.
var tableType = reflect.TypeFor[*Table]()

func needsDeepCopy(typ reflect.Type) bool {
	if typ == tableType {
		return true
	}

	switch typ.Kind() { //nolint:exhaustive // everything else is copied by assignment
	case reflect.Slice, reflect.Map, reflect.Interface:
		return true
	case reflect.Array:
		return needsDeepCopy(typ.Elem())
	default:
		return false
	}
}

func cloneValue[T any](v T) T {
	if t, ok := any(v).(*Table); ok {
		c, _ := any(t.Clone()).(T)

		return c
	}

	copied, _ := deepCopy(reflect.ValueOf(&v).Elem()).Interface().(T)

	return copied
}

// deepCopy copies slices, maps, arrays and interfaces recursively and
// clones nested tables. Other pointers are shared.
func deepCopy(v reflect.Value) reflect.Value {
	if v.Type() == tableType {
		if v.IsNil() {
			return v
		}

		t, _ := v.Interface().(*Table)

		return reflect.ValueOf(t.Clone())
	}

	switch v.Kind() { //nolint:exhaustive // scalars are returned as is
	case reflect.Slice:
		if v.IsNil() {
			return v
		}

		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			c.Index(i).Set(deepCopy(v.Index(i)))
		}

		return c
	case reflect.Array:
		c := reflect.New(v.Type()).Elem()
		for i := range v.Len() {
			c.Index(i).Set(deepCopy(v.Index(i)))
		}

		return c
	case reflect.Map:
		if v.IsNil() {
			return v
		}

		c := reflect.MakeMapWithSize(v.Type(), v.Len())

		iter := v.MapRange()
		for iter.Next() {
			c.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}

		return c
	case reflect.Interface:
		if v.IsNil() {
			return v
		}

		c := reflect.New(v.Type()).Elem()
		c.Set(deepCopy(v.Elem()))

		return c
	default:
		return v
	}
}
