package engine

// QueryResult is an immutable snapshot returned by query-style operations.
// Getters hand out copies so the snapshot cannot be changed from outside.
type QueryResult struct {
	columns      []string
	rows         []Row
	rowsAffected int
	message      string
	err          string
	hasErr       bool
}

func NewQueryResult(columns []string, rows []Row, rowsAffected int) *QueryResult {
	return &QueryResult{
		columns:      copyColumns(columns),
		rows:         copyRows(rows),
		rowsAffected: rowsAffected,
	}
}

// NewMessageResult builds a row-less result carrying a status line
func NewMessageResult(message string, rowsAffected int) *QueryResult {
	return &QueryResult{
		message:      message,
		rowsAffected: rowsAffected,
	}
}

// NewErrorResult builds a failed result. A nil err yields a result without error.
func NewErrorResult(err error) *QueryResult {
	if err == nil {
		return &QueryResult{}
	}
	return &QueryResult{err: err.Error(), hasErr: true}
}

func (r *QueryResult) Columns() []string { return copyColumns(r.columns) }
func (r *QueryResult) Rows() []Row       { return copyRows(r.rows) }
func (r *QueryResult) RowsAffected() int { return r.rowsAffected }
func (r *QueryResult) Message() string   { return r.message }
func (r *QueryResult) Err() string       { return r.err }
func (r *QueryResult) HasError() bool    { return r.hasErr }

func copyColumns(columns []string) []string {
	if columns == nil {
		return nil
	}
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

func copyRows(rows []Row) []Row {
	if rows == nil {
		return nil
	}
	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = row.Copy()
	}
	return out
}
