package executor

import (
	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/parser/ast"
)

func (s *Session) executeInsert(stmt *ast.InsertStatement) *engine.QueryResult {
	table, err := s.table(stmt.TableName.Value)
	if err != nil {
		return engine.NewErrorResult(err)
	}

	if err := table.Insert(literalValues(stmt.Values)); err != nil {
		return engine.NewErrorResult(err)
	}
	return engine.NewMessageResult("1 row inserted", 1)
}
