package executor

import (
	"fmt"

	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/parser/ast"
)

// checkPrimaryKeyCondition rejects WHERE clauses that do not name the key column.
// Rows are addressed by primary key only.
func checkPrimaryKeyCondition(table *engine.Table, cond *ast.Condition) error {
	pk := table.Columns()[table.PrimaryKeyIndex()].Name()
	if cond.Column.Value != pk {
		return fmt.Errorf("WHERE must use primary key column %s of table %s, got %s",
			pk, table.Name(), cond.Column.Value)
	}
	return nil
}

func (s *Session) executeUpdate(stmt *ast.UpdateStatement) *engine.QueryResult {
	table, err := s.table(stmt.TableName.Value)
	if err != nil {
		return engine.NewErrorResult(err)
	}
	if err := checkPrimaryKeyCondition(table, stmt.Where); err != nil {
		return engine.NewErrorResult(err)
	}

	if err := table.Update(stmt.Where.Value.Value, stmt.Set.Column.Value, stmt.Set.Value.Value); err != nil {
		return engine.NewErrorResult(err)
	}
	return engine.NewMessageResult("1 row updated", 1)
}
