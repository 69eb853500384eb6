package engine

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

type DataType string

const (
	TypeInteger DataType = "INTEGER"
	TypeFloat   DataType = "FLOAT"
	TypeString  DataType = "STRING"
	TypeBoolean DataType = "BOOLEAN"
	TypeDate    DataType = "DATE"
)

var dataTypeAliases = map[string]DataType{
	"INTEGER": TypeInteger,
	"INT":     TypeInteger,
	"FLOAT":   TypeFloat,
	"REAL":    TypeFloat,
	"STRING":  TypeString,
	"TEXT":    TypeString,
	"BOOLEAN": TypeBoolean,
	"BOOL":    TypeBoolean,
	"DATE":    TypeDate,
}

// ParseDataType maps a type name (case-insensitive) to a DataType
func ParseDataType(s string) (DataType, error) {
	if dt, ok := dataTypeAliases[strings.ToUpper(s)]; ok {
		return dt, nil
	}
	return "", fmt.Errorf("unknown data type %q", s)
}

// Column describes one positional slot of a table row.
// Fields are fixed at construction.
type Column struct {
	name       string
	dataType   DataType
	notNull    bool
	primaryKey bool
}

type ColumnOption func(*Column)

func NotNull() ColumnOption {
	return func(c *Column) { c.notNull = true }
}

func PrimaryKey() ColumnOption {
	return func(c *Column) { c.primaryKey = true }
}

func NewColumn(name string, dataType DataType, opts ...ColumnOption) *Column {
	c := &Column{name: name, dataType: dataType}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Column) Name() string       { return c.name }
func (c *Column) Type() DataType     { return c.dataType }
func (c *Column) IsNotNull() bool    { return c.notNull }
func (c *Column) IsPrimaryKey() bool { return c.primaryKey }

func (c *Column) String() string {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteString(" ")
	b.WriteString(string(c.dataType))
	if c.primaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if c.notNull {
		b.WriteString(" NOT NULL")
	}
	return b.String()
}

// ValidateValue reports whether v may be stored in this column
func (c *Column) ValidateValue(v any) bool {
	return c.Validate(v) == nil
}

// Validate checks v against the column's type and null rules.
// No coercion is done: a numeric string is not a number.
func (c *Column) Validate(v any) error {
	if v == nil {
		if c.notNull {
			return NewNotNullViolation("", c.name, -1)
		}
		return nil
	}

	ok := false
	switch c.dataType {
	case TypeInteger:
		ok = isIntegral(v)
	case TypeFloat:
		_, ok = toFloat(v)
	case TypeString:
		_, ok = v.(string)
	case TypeBoolean:
		_, ok = v.(bool)
	case TypeDate:
		_, ok = v.(time.Time)
	default:
		return fmt.Errorf("unknown column type %q", c.dataType)
	}

	if !ok {
		return NewTypeMismatch("", c.name, v, string(c.dataType))
	}
	return nil
}

// normalize returns the stored representation of an already validated value
func (c *Column) normalize(v any) any {
	if v == nil {
		return nil
	}
	switch c.dataType {
	case TypeInteger:
		if i, ok := toInt64(v); ok {
			return i
		}
		f, _ := toFloat(v)
		return int64(f)
	case TypeFloat:
		f, _ := toFloat(v)
		return f
	}
	return v
}

func isIntegral(v any) bool {
	if _, ok := toInt64(v); ok {
		return true
	}
	switch f := v.(type) {
	case float64:
		return integralFloat(f)
	case float32:
		return integralFloat(float64(f))
	}
	return false
}

// integralFloat reports whether f is a whole number that fits in an int64
func integralFloat(f float64) bool {
	return f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case uint:
		return float64(f), true
	case uint64:
		return float64(f), true
	}
	return 0, false
}

// dateKey identifies an instant independent of location and monotonic reading
type dateKey struct {
	sec  int64
	nsec int
}

// valueKey maps a cell value to a comparable key such that numerically
// equal numbers share a key and dates compare by instant.
func valueKey(v any) any {
	if v == nil {
		return nil
	}
	if i, ok := toInt64(v); ok {
		return i
	}
	switch x := v.(type) {
	case float64, float32:
		f, _ := toFloat(x)
		if integralFloat(f) {
			return int64(f)
		}
		return f
	case time.Time:
		return dateKey{sec: x.Unix(), nsec: x.Nanosecond()}
	}
	return v
}

// ValuesEqual compares cell values the way primary keys and indexes do:
// numbers by numeric value, dates by instant, everything else with ==.
func ValuesEqual(a, b any) bool {
	ka, kb := valueKey(a), valueKey(b)
	if ka != nil && !reflect.TypeOf(ka).Comparable() || kb != nil && !reflect.TypeOf(kb).Comparable() {
		return false
	}
	return ka == kb
}
