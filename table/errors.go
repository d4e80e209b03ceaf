package table

import "errors"

// ErrTypeConflict is returned by Set when a field already exists with a different value type.
var ErrTypeConflict = errors.New("type conflict")

// ErrEmptyName is returned by Set when the field name is empty.
var ErrEmptyName = errors.New("field name must not be empty")

// ErrNilTable is returned by Set when called on a nil table.
var ErrNilTable = errors.New("table is nil")
