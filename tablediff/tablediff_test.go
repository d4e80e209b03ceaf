package tablediff_test

import (
	"testing"

	"github.com/0xalexb/edat/parse"
	"github.com/0xalexb/edat/table"
	"github.com/0xalexb/edat/tablediff"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *table.Table {
	t.Helper()

	tbl, err := parse.ParseString(src)
	require.NoError(t, err)

	return tbl
}

func TestDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from string
		to   string
		want []tablediff.Change
	}{
		{
			name: "identical",
			from: "a : int = 1\nb : str = x\n",
			to:   "a : int = 1\nb : str = x\n",
			want: nil,
		},
		{
			name: "value changed",
			from: "a : int = 1\n",
			to:   "a : int = 2\n",
			want: []tablediff.Change{{Kind: tablediff.Changed, Path: "a", From: 1, To: 2}},
		},
		{
			name: "type changed",
			from: "a : int = 1\n",
			to:   "a : int64 = 1\n",
			want: []tablediff.Change{{Kind: tablediff.Changed, Path: "a", From: 1, To: int64(1)}},
		},
		{
			name: "added and removed",
			from: "a : int = 1\nb : int = 2\n",
			to:   "a : int = 1\nc : int = 3\n",
			want: []tablediff.Change{
				{Kind: tablediff.Removed, Path: "b", From: 2},
				{Kind: tablediff.Added, Path: "c", To: 3},
			},
		},
		{
			name: "moved field is not a change",
			from: "a : int = 1\nb : int = 2\n",
			to:   "b : int = 2\na : int = 1\n",
			want: nil,
		},
		{
			name: "moved and changed",
			from: "a : int = 1\nb : int = 2\n",
			to:   "b : int = 2\na : int = 5\n",
			want: []tablediff.Change{{Kind: tablediff.Changed, Path: "a", From: 1, To: 5}},
		},
		{
			name: "nested path",
			from: "t = {\n  x : int = 1\n  u = { y : bool = true }\n}\n",
			to:   "t = {\n  x : int = 1\n  u = { y : bool = false }\n}\n",
			want: []tablediff.Change{{Kind: tablediff.Changed, Path: "t.u.y", From: true, To: false}},
		},
		{
			name: "slices compared by value",
			from: "p : int[] = 1, 2\n",
			to:   "p : int[] = 1, 3\n",
			want: []tablediff.Change{{Kind: tablediff.Changed, Path: "p", From: []int{1, 2}, To: []int{1, 3}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tablediff.Diff(mustParse(t, tt.from), mustParse(t, tt.to))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiff_TableReplacedByValue(t *testing.T) {
	t.Parallel()

	from := mustParse(t, "t = { x : int = 1 }\n")
	to := mustParse(t, "t : int = 1\n")

	got := tablediff.Diff(from, to)
	require.Len(t, got, 1)
	assert.Equal(t, tablediff.Changed, got[0].Kind)
	assert.Equal(t, "t", got[0].Path)
	assert.Equal(t, 1, got[0].To)
}

func TestDiff_EmptyTables(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tablediff.Diff(table.New(), table.New()))
	assert.Empty(t, tablediff.Diff(nil, nil))

	added := tablediff.Diff(nil, mustParse(t, "a : int = 1\n"))
	require.Len(t, added, 1)
	assert.Equal(t, tablediff.Added, added[0].Kind)
}

func TestChange_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+ a = 1", tablediff.Change{Kind: tablediff.Added, Path: "a", To: 1}.String())
	assert.Equal(t, "- a = 1", tablediff.Change{Kind: tablediff.Removed, Path: "a", From: 1}.String())
	assert.Equal(t, "~ a: 1 -> 2", tablediff.Change{Kind: tablediff.Changed, Path: "a", From: 1, To: 2}.String())
	assert.Equal(t, "changed", tablediff.Changed.String())
}
