package executor

import (
	"fmt"

	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/parser/ast"
)

func (s *Session) executeSelect(stmt *ast.SelectStatement) *engine.QueryResult {
	table, err := s.table(stmt.TableName.Value)
	if err != nil {
		return engine.NewErrorResult(err)
	}

	// Build projection
	var (
		columns   []string
		positions []int
	)
	if len(stmt.Fields) == 1 && stmt.Fields[0].Value == "*" {
		columns = table.ColumnNames()
		for i := range columns {
			positions = append(positions, i)
		}
	} else {
		for _, f := range stmt.Fields {
			pos := table.GetColumnIndex(f.Value)
			if pos < 0 {
				return engine.NewErrorResult(fmt.Errorf("%w: %s.%s", engine.ErrColumnNotFound, table.Name(), f.Value))
			}
			columns = append(columns, f.Value)
			positions = append(positions, pos)
		}
	}

	var pred engine.PredicateFunc
	if stmt.Where != nil {
		pos := table.GetColumnIndex(stmt.Where.Column.Value)
		if pos < 0 {
			return engine.NewErrorResult(fmt.Errorf("%w: %s.%s", engine.ErrColumnNotFound, table.Name(), stmt.Where.Column.Value))
		}
		want := stmt.Where.Value.Value
		pred = func(r engine.Row) bool {
			return engine.ValuesEqual(r[pos], want)
		}
	}

	matched := table.SelectRows(pred)
	rows := make([]engine.Row, len(matched))
	for i, row := range matched {
		rows[i] = project(row, positions)
	}
	return engine.NewQueryResult(columns, rows, len(rows))
}

func project(row engine.Row, positions []int) engine.Row {
	out := make(engine.Row, len(positions))
	for i, pos := range positions {
		out[i] = row[pos]
	}
	return out
}
