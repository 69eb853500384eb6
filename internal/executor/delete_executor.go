package executor

import (
	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/parser/ast"
)

func (s *Session) executeDelete(stmt *ast.DeleteStatement) *engine.QueryResult {
	table, err := s.table(stmt.TableName.Value)
	if err != nil {
		return engine.NewErrorResult(err)
	}
	if err := checkPrimaryKeyCondition(table, stmt.Where); err != nil {
		return engine.NewErrorResult(err)
	}

	if err := table.Delete(stmt.Where.Value.Value); err != nil {
		return engine.NewErrorResult(err)
	}
	return engine.NewMessageResult("1 row deleted", 1)
}
