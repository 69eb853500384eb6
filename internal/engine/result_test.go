package engine

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

func TestQueryResultIsSnapshot(t *testing.T) {
	columns := []string{"id", "name"}
	rows := []Row{{int64(1), "a"}}
	res := NewQueryResult(columns, rows, 1)

	columns[0] = "changed"
	rows[0][1] = "changed"
	assert.DeepEqual(t, res.Columns(), []string{"id", "name"})
	assert.DeepEqual(t, res.Rows(), []Row{{int64(1), "a"}})

	got := res.Rows()
	got[0][0] = int64(42)
	cols := res.Columns()
	cols[1] = "x"
	assert.DeepEqual(t, res.Rows(), []Row{{int64(1), "a"}})
	assert.DeepEqual(t, res.Columns(), []string{"id", "name"})

	assert.Equal(t, res.RowsAffected(), 1)
	assert.Assert(t, !res.HasError())
	assert.Equal(t, res.Err(), "")
}

func TestErrorResult(t *testing.T) {
	res := NewErrorResult(errors.New("table not found: t"))
	assert.Assert(t, res.HasError())
	assert.Equal(t, res.Err(), "table not found: t")
	assert.Assert(t, res.Rows() == nil)

	assert.Assert(t, !NewErrorResult(nil).HasError())
}

func TestMessageResult(t *testing.T) {
	res := NewMessageResult("1 row inserted", 1)
	assert.Equal(t, res.Message(), "1 row inserted")
	assert.Equal(t, res.RowsAffected(), 1)
	assert.Assert(t, !res.HasError())
}
