package engine

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Row represents a single table row.
// Values are positional, one per column.
type Row []any

// Copy returns a shallow copy of the row
func (r Row) Copy() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

type PredicateFunc func(Row) bool

// Table is an ordered collection of rows validated against a fixed schema.
// It is not safe for concurrent use; callers sharing a table across
// goroutines must serialize every call on it.
type Table struct {
	name      string
	columns   []*Column
	rows      []Row
	pkIndex   int
	observers []Observer
	logger    *slog.Logger
	now       func() time.Time
}

type TableOption func(*Table)

// WithLogger sets the logger used for constraint diagnostics
func WithLogger(logger *slog.Logger) TableOption {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithClock overrides the time source used to stamp events
func WithClock(now func() time.Time) TableOption {
	return func(t *Table) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTable creates a table with its full column set.
// The primary key is the first column flagged PrimaryKey, else column 0.
func NewTable(name string, columns []*Column, opts ...TableOption) *Table {
	cols := make([]*Column, len(columns))
	copy(cols, columns)

	t := &Table{
		name:    name,
		columns: cols,
		rows:    make([]Row, 0),
		logger:  slog.Default(),
		now:     time.Now,
	}
	for i, col := range cols {
		if col.IsPrimaryKey() {
			t.pkIndex = i
			break
		}
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table) Name() string { return t.name }

// Columns returns a copy of the column list
func (t *Table) Columns() []*Column {
	cols := make([]*Column, len(t.columns))
	copy(cols, t.columns)
	return cols
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name()
	}
	return names
}

// PrimaryKeyIndex returns the position of the primary-key column
func (t *Table) PrimaryKeyIndex() int { return t.pkIndex }

// Len returns the number of rows
func (t *Table) Len() int { return len(t.rows) }

// GetColumnIndex returns the position of the named column or -1
func (t *Table) GetColumnIndex(name string) int {
	for i, col := range t.columns {
		if col.Name() == name {
			return i
		}
	}
	return -1
}

// FindRowByPrimaryKey returns the position of the row holding value in the
// primary-key column, or -1. Linear scan.
func (t *Table) FindRowByPrimaryKey(value any) int {
	if len(t.columns) == 0 {
		return -1
	}
	for i, row := range t.rows {
		if ValuesEqual(row[t.pkIndex], value) {
			return i
		}
	}
	return -1
}

// InsertRow appends values as a new row. It returns false, leaving the
// table untouched, on arity mismatch, invalid value or duplicate key.
// A table without columns has no primary key and accepts no rows.
func (t *Table) InsertRow(values []any) bool {
	return t.Insert(values) == nil
}

// Insert is InsertRow with the reason for failure
func (t *Table) Insert(values []any) error {
	if len(t.columns) == 0 {
		return t.reject(NewMissingPrimaryKey(t.name))
	}
	if len(values) != len(t.columns) {
		return t.reject(NewArityMismatch(t.name, len(values), len(t.columns)))
	}

	row := make(Row, len(values))
	for i, col := range t.columns {
		if err := col.Validate(values[i]); err != nil {
			return t.reject(t.scope(err, -1))
		}
		row[i] = col.normalize(values[i])
	}

	pk := row[t.pkIndex]
	if pos := t.FindRowByPrimaryKey(pk); pos >= 0 {
		return t.reject(NewPrimaryKeyViolation(t.name, t.columns[t.pkIndex].Name(), pk, pos))
	}

	pos := len(t.rows)
	t.rows = append(t.rows, row)
	t.notify(EventInsert, pos, row)
	return nil
}

// UpdateRow sets one cell of the row identified by its primary key.
// Updating the key column itself does not re-check uniqueness.
func (t *Table) UpdateRow(primaryKeyValue any, columnName string, newValue any) bool {
	return t.Update(primaryKeyValue, columnName, newValue) == nil
}

// Update is UpdateRow with the reason for failure
func (t *Table) Update(primaryKeyValue any, columnName string, newValue any) error {
	pos := t.FindRowByPrimaryKey(primaryKeyValue)
	if pos < 0 {
		return fmt.Errorf("%s: primary key %v: %w", t.name, primaryKeyValue, ErrRowNotFound)
	}
	colIdx := t.GetColumnIndex(columnName)
	if colIdx < 0 {
		return fmt.Errorf("%s.%s: %w", t.name, columnName, ErrColumnNotFound)
	}
	col := t.columns[colIdx]
	if err := col.Validate(newValue); err != nil {
		return t.reject(t.scope(err, pos))
	}

	t.rows[pos][colIdx] = col.normalize(newValue)
	t.notify(EventUpdate, pos, t.rows[pos])
	return nil
}

// DeleteRow removes the row identified by its primary key.
// Later rows shift down by one position.
func (t *Table) DeleteRow(primaryKeyValue any) bool {
	return t.Delete(primaryKeyValue) == nil
}

// Delete is DeleteRow with the reason for failure
func (t *Table) Delete(primaryKeyValue any) error {
	pos := t.FindRowByPrimaryKey(primaryKeyValue)
	if pos < 0 {
		return fmt.Errorf("%s: primary key %v: %w", t.name, primaryKeyValue, ErrRowNotFound)
	}
	removed := t.rows[pos]
	last := len(t.rows) - 1
	copy(t.rows[pos:], t.rows[pos+1:])
	t.rows[last] = nil
	t.rows = t.rows[:last]
	t.notify(EventDelete, pos, removed)
	return nil
}

// SelectRows returns the rows matching pred (all rows when pred is nil)
// in insertion order. The returned slice is a copy; the table is not modified.
func (t *Table) SelectRows(pred PredicateFunc) []Row {
	result := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		if pred == nil || pred(row) {
			result = append(result, row)
		}
	}
	return result
}

// Query wraps SelectRows in a QueryResult
func (t *Table) Query(pred PredicateFunc) *QueryResult {
	rows := t.SelectRows(pred)
	return NewQueryResult(t.ColumnNames(), rows, len(rows))
}

// AddObserver registers an observer to receive mutation events
func (t *Table) AddObserver(observer Observer) {
	t.observers = append(t.observers, observer)
}

// RemoveObserver unregisters an observer. Observers are matched with ==,
// so only comparable observers (typically pointers) can be removed.
func (t *Table) RemoveObserver(observer Observer) {
	if observer == nil || !reflect.TypeOf(observer).Comparable() {
		return
	}
	for i, o := range t.observers {
		if o == observer {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table) notify(typ EventType, pos int, values Row) {
	if len(t.observers) == 0 {
		return
	}
	event := Event{
		ID:        uuid.New().String(),
		Type:      typ,
		Table:     t.name,
		Position:  pos,
		Values:    values.Copy(),
		Timestamp: t.now(),
	}
	for _, observer := range t.observers {
		observer.OnEvent(event)
	}
}

// scope stamps a column-level error with this table's name and row position
func (t *Table) scope(err error, rowIndex int) error {
	if ce, ok := err.(*ConstraintError); ok {
		scoped := *ce
		scoped.Table = t.name
		scoped.RowIndex = rowIndex
		return &scoped
	}
	return err
}

func (t *Table) reject(err error) error {
	t.logger.Debug("row rejected",
		slog.String("table", t.name),
		slog.String("error", err.Error()))
	return err
}
