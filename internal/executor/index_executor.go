package executor

import (
	"fmt"

	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/parser/ast"
)

func indexKey(table, column string) string {
	return table + "." + column
}

func (s *Session) executeCreateIndex(stmt *ast.CreateIndexStatement) *engine.QueryResult {
	table, err := s.table(stmt.TableName.Value)
	if err != nil {
		return engine.NewErrorResult(err)
	}
	key := indexKey(table.Name(), stmt.Column.Value)
	if _, exists := s.indexes[key]; exists {
		return engine.NewErrorResult(fmt.Errorf("%w: %s", ErrIndexExists, key))
	}

	idx, err := engine.NewIndex(table, stmt.Column.Value)
	if err != nil {
		return engine.NewErrorResult(err)
	}
	idx.Rebuild()
	if s.autoReindex {
		table.AddObserver(engine.AutoRebuild(idx))
	}
	s.indexes[key] = idx

	return engine.NewMessageResult(fmt.Sprintf("Index %s created (%d distinct values)", key, idx.DistinctValues()), 0)
}

func (s *Session) index(table, column string) (*engine.Index, error) {
	key := indexKey(table, column)
	idx, ok := s.indexes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, key)
	}
	return idx, nil
}

func (s *Session) executeReindex(stmt *ast.ReindexStatement) *engine.QueryResult {
	idx, err := s.index(stmt.TableName.Value, stmt.Column.Value)
	if err != nil {
		return engine.NewErrorResult(err)
	}
	idx.Rebuild()
	return engine.NewMessageResult(fmt.Sprintf("Index %s rebuilt (%d distinct values)",
		indexKey(stmt.TableName.Value, stmt.Column.Value), idx.DistinctValues()), 0)
}

// executeLookup answers from the index alone. Positions are reported as
// recorded, so a stale index shows stale (or out of range) positions.
func (s *Session) executeLookup(stmt *ast.LookupStatement) *engine.QueryResult {
	idx, err := s.index(stmt.TableName.Value, stmt.Column.Value)
	if err != nil {
		return engine.NewErrorResult(err)
	}
	table := idx.Table()
	current := table.SelectRows(nil)

	columns := append([]string{"position"}, table.ColumnNames()...)
	var rows []engine.Row
	for _, pos := range idx.Lookup(stmt.Value.Value) {
		row := make(engine.Row, len(columns))
		row[0] = int64(pos)
		if pos < len(current) {
			copy(row[1:], current[pos])
		}
		rows = append(rows, row)
	}
	return engine.NewQueryResult(columns, rows, len(rows))
}
