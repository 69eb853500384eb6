package engine

import (
	"errors"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func newColorTable(t *testing.T) *Table {
	t.Helper()
	table := NewTable("paint", []*Column{
		NewColumn("id", TypeInteger, PrimaryKey()),
		NewColumn("color", TypeString),
	}, WithLogger(quietLogger()))
	for i, c := range []any{"red", "blue", "red", nil} {
		assert.Assert(t, table.InsertRow([]any{i + 1, c}))
	}
	return table
}

func TestNewIndexUnknownColumn(t *testing.T) {
	table := newColorTable(t)
	_, err := NewIndex(table, "shade")
	assert.Assert(t, errors.Is(err, ErrColumnNotFound))
}

func TestIndexLookup(t *testing.T) {
	table := newColorTable(t)
	idx, err := NewIndex(table, "color")
	assert.NilError(t, err)

	assert.Assert(t, is.Len(idx.Lookup("red"), 0), "empty before rebuild")

	idx.Rebuild()
	assert.DeepEqual(t, idx.Lookup("red"), []int{0, 2})
	assert.DeepEqual(t, idx.Lookup("blue"), []int{1})
	assert.DeepEqual(t, idx.Lookup(nil), []int{3})
	assert.DeepEqual(t, idx.Lookup("green"), []int{})
	assert.DeepEqual(t, idx.Lookup([]int{1}), []int{})
	assert.Equal(t, idx.DistinctValues(), 3)
	assert.Equal(t, idx.Column(), "color")
	assert.Equal(t, idx.Table(), table)
}

func TestIndexLookupReturnsCopy(t *testing.T) {
	table := newColorTable(t)
	idx, err := NewIndex(table, "color")
	assert.NilError(t, err)
	idx.Rebuild()

	got := idx.Lookup("red")
	got[0] = 99
	assert.DeepEqual(t, idx.Lookup("red"), []int{0, 2})
}

func TestIndexNumericKeys(t *testing.T) {
	table := newColorTable(t)
	idx, err := NewIndex(table, "id")
	assert.NilError(t, err)
	idx.Rebuild()

	assert.DeepEqual(t, idx.Lookup(2), []int{1})
	assert.DeepEqual(t, idx.Lookup(int64(2)), []int{1})
	assert.DeepEqual(t, idx.Lookup(2.0), []int{1})
}

func TestIndexDateKeys(t *testing.T) {
	table := NewTable("events", []*Column{
		NewColumn("id", TypeInteger, PrimaryKey()),
		NewColumn("on", TypeDate),
	}, WithLogger(quietLogger()))
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Assert(t, table.InsertRow([]any{1, day}))

	idx, err := NewIndex(table, "on")
	assert.NilError(t, err)
	idx.Rebuild()

	sameInstant := day.In(time.FixedZone("X", 3600))
	assert.DeepEqual(t, idx.Lookup(sameInstant), []int{0})
}

func TestIndexStaleness(t *testing.T) {
	table := newColorTable(t)
	idx, err := NewIndex(table, "color")
	assert.NilError(t, err)
	idx.Rebuild()

	assert.Assert(t, table.InsertRow([]any{5, "blue"}))
	assert.Check(t, is.DeepEqual(idx.Lookup("blue"), []int{1}), "index does not follow inserts")

	assert.Assert(t, table.DeleteRow(1))
	assert.Check(t, is.DeepEqual(idx.Lookup("blue"), []int{1}), "positions are stale after delete")

	idx.Rebuild()
	assert.DeepEqual(t, idx.Lookup("blue"), []int{0, 3})
	assert.DeepEqual(t, idx.Lookup("red"), []int{1})
}

func TestAutoRebuildObserver(t *testing.T) {
	table := newColorTable(t)
	idx, err := NewIndex(table, "color")
	assert.NilError(t, err)
	idx.Rebuild()

	rebuilder := AutoRebuild(idx)
	table.AddObserver(rebuilder)

	assert.Assert(t, table.InsertRow([]any{5, "blue"}))
	assert.DeepEqual(t, idx.Lookup("blue"), []int{1, 4})

	assert.Assert(t, table.UpdateRow(5, "color", "red"))
	assert.DeepEqual(t, idx.Lookup("red"), []int{0, 2, 4})

	table.RemoveObserver(rebuilder)
	assert.Assert(t, table.DeleteRow(1))
	assert.DeepEqual(t, idx.Lookup("red"), []int{0, 2, 4})
}
