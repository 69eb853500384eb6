package engine

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Index is an in-memory secondary index on a single column of one table.
//
// The index is a snapshot: it reflects the table as of the last Rebuild.
// Inserts, updates and deletes on the table are not tracked, so lookups may
// return stale positions until Rebuild is called again (or an AutoRebuild
// observer is attached to the table).
type Index struct {
	table  *Table
	column string
	colIdx int
	data   map[any][]int // value → row positions
}

// NewIndex creates an empty index on table.column. Call Rebuild before use.
func NewIndex(table *Table, column string) (*Index, error) {
	colIdx := table.GetColumnIndex(column)
	if colIdx < 0 {
		return nil, fmt.Errorf("index on %s.%s: %w", table.Name(), column, ErrColumnNotFound)
	}
	return &Index{
		table:  table,
		column: column,
		colIdx: colIdx,
		data:   make(map[any][]int),
	}, nil
}

func (idx *Index) Table() *Table  { return idx.table }
func (idx *Index) Column() string { return idx.column }

// DistinctValues returns the number of distinct keys seen at the last rebuild
func (idx *Index) DistinctValues() int { return len(idx.data) }

// Rebuild discards the current mapping and rescans every row of the table once
func (idx *Index) Rebuild() {
	idx.data = make(map[any][]int)
	for pos, row := range idx.table.rows {
		key := valueKey(row[idx.colIdx])
		idx.data[key] = append(idx.data[key], pos)
	}

	idx.table.logger.Debug("index rebuilt",
		slog.String("table", idx.table.Name()),
		slog.String("column", idx.column),
		slog.Int("rows", len(idx.table.rows)),
		slog.Int("unique_values", len(idx.data)))
}

// Lookup returns the row positions recorded for value, or an empty slice
func (idx *Index) Lookup(value any) []int {
	key := valueKey(value)
	if key != nil && !reflect.TypeOf(key).Comparable() {
		return []int{}
	}
	positions := idx.data[key]
	out := make([]int, len(positions))
	copy(out, positions)
	return out
}
