// Package tablediff compares two tables field by field.
package tablediff

import (
	"fmt"
	"reflect"

	"github.com/0xalexb/edat/table"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Kind tells how a field differs.
type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Change describes one differing field. Path joins the names of enclosing
// tables with '.'. From is nil for Added and To is nil for Removed.
type Change struct {
	Kind Kind
	Path string
	From any
	To   any
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s = %v", c.Path, c.To)
	case Removed:
		return fmt.Sprintf("- %s = %v", c.Path, c.From)
	default:
		return fmt.Sprintf("~ %s: %v -> %v", c.Path, c.From, c.To)
	}
}

// firstRune keeps field runes clear of the surrogate range.
const firstRune = 0xE000

// Diff returns the changes that turn from into to. Field order follows the
// order of the fields in the two tables; a field that only moved is not a
// change. Nested tables present on both sides are compared recursively.
func Diff(from, to *table.Table) []Change {
	return diff(from, to, "")
}

func diff(from, to *table.Table, prefix string) []Change {
	fromNames, toNames := from.Names(), to.Names()
	runeOf := map[string]rune{}
	fromRunes := toRunes(runeOf, fromNames)
	toRunesSeq := toRunes(runeOf, toNames)

	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunesSeq, false)

	var changes []Change

	fi, ti := 0, 0

	for i := range diffs {
		d := &diffs[i]

		for range []rune(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				name := fromNames[fi]
				fi++

				if to.Has(name) {
					continue
				}

				v, _ := from.Value(name)
				changes = append(changes, Change{Kind: Removed, Path: prefix + name, From: v})
			case diffpatch.DiffInsert:
				name := toNames[ti]
				ti++

				if from.Has(name) {
					changes = append(changes, compare(from, to, name, prefix)...)

					continue
				}

				v, _ := to.Value(name)
				changes = append(changes, Change{Kind: Added, Path: prefix + name, To: v})
			case diffpatch.DiffEqual:
				name := fromNames[fi]
				fi++
				ti++

				changes = append(changes, compare(from, to, name, prefix)...)
			}
		}
	}

	return changes
}

func toRunes(runeOf map[string]rune, names []string) []rune {
	out := make([]rune, len(names))

	for i, name := range names {
		r, ok := runeOf[name]
		if !ok {
			r = firstRune + rune(len(runeOf))
			runeOf[name] = r
		}

		out[i] = r
	}

	return out
}

func compare(from, to *table.Table, name, prefix string) []Change {
	a, _ := from.Value(name)
	b, _ := to.Value(name)

	subA, okA := a.(*table.Table)
	subB, okB := b.(*table.Table)

	if okA && okB {
		return diff(subA, subB, prefix+name+".")
	}

	if reflect.TypeOf(a) == reflect.TypeOf(b) && reflect.DeepEqual(a, b) {
		return nil
	}

	return []Change{{Kind: Changed, Path: prefix + name, From: a, To: b}}
}
