package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRowNotFound    = errors.New("row not found")
	ErrColumnNotFound = errors.New("column not found")
)

// Represents a violation of a table constraint
// (primary key, not null, type mismatch, row arity)
type ConstraintError struct {
	Table      string // table name (empty when raised by a bare Column)
	Column     string // column name (empty if table-level constraint)
	Value      any    // offending value (may be nil)
	Constraint string // "primary_key", "not_null", "type_mismatch", "arity"
	Reason     string // human-readable explanation (optional)
	RowIndex   int    // row position (0-based) where violation occurred (-1 if unknown)
}

func (e *ConstraintError) Error() string {
	var parts []string

	target := e.Column
	if e.Table != "" {
		target = e.Table + "." + e.Column
	}
	parts = append(parts, fmt.Sprintf("constraint violation in %s", target))

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.RowIndex))
	}

	return strings.Join(parts, " - ")
}

func NewNotNullViolation(table, column string, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Value:      nil,
		Constraint: "not_null",
		Reason:     "missing required value",
		RowIndex:   rowIndex,
	}
}

func NewPrimaryKeyViolation(table, column string, value any, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Value:      value,
		Constraint: "primary_key",
		Reason:     "duplicate primary key",
		RowIndex:   rowIndex,
	}
}

func NewTypeMismatch(table, column string, value any, expectedType string) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Value:      value,
		Constraint: "type_mismatch",
		Reason:     fmt.Sprintf("expected type %s, got %T", expectedType, value),
		RowIndex:   -1,
	}
}

func NewArityMismatch(table string, got, want int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Constraint: "arity",
		Reason:     fmt.Sprintf("expected %d values, got %d", want, got),
		RowIndex:   -1,
	}
}

func NewMissingPrimaryKey(table string) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Constraint: "primary_key",
		Reason:     "table has no columns",
		RowIndex:   -1,
	}
}
