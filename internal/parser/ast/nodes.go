package ast

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement represents one complete command
type Statement interface {
	Node
	statementNode()
}

// Identifier represents a table, column or path name
type Identifier struct {
	TokenLiteralValue string // The token literal (e.g. "users")
	Value             string // The value (e.g. "users")
}

func (i *Identifier) TokenLiteral() string { return i.TokenLiteralValue }
func (i *Identifier) String() string       { return i.Value }

// Literal represents a fixed value
type Literal struct {
	TokenLiteralValue string
	Value             interface{} // nil, string, int64, float64, bool, time.Time
}

func (l *Literal) TokenLiteral() string { return l.TokenLiteralValue }
func (l *Literal) String() string {
	switch v := l.Value.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case time.Time:
		return fmt.Sprintf("DATE '%s'", v.Format("2006-01-02"))
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	}
	return l.TokenLiteralValue
}

// Condition is the single equality allowed in WHERE and LOOKUP
type Condition struct {
	Column *Identifier
	Value  *Literal
}

func (c *Condition) String() string {
	return fmt.Sprintf("%s = %s", c.Column, c.Value)
}

// ColumnDef: name TYPE [PRIMARY KEY] [NOT NULL]
type ColumnDef struct {
	Name       *Identifier
	Type       string
	PrimaryKey bool
	NotNull    bool
}

func (c *ColumnDef) String() string {
	var out bytes.Buffer
	out.WriteString(c.Name.String())
	out.WriteString(" ")
	out.WriteString(c.Type)
	if c.PrimaryKey {
		out.WriteString(" PRIMARY KEY")
	}
	if c.NotNull {
		out.WriteString(" NOT NULL")
	}
	return out.String()
}

// CreateTableStatement: CREATE TABLE t (col TYPE ..., ...)
type CreateTableStatement struct {
	TableName *Identifier
	Columns   []*ColumnDef
}

func (s *CreateTableStatement) statementNode()       {}
func (s *CreateTableStatement) TokenLiteral() string { return "CREATE" }
func (s *CreateTableStatement) String() string {
	defs := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		defs[i] = c.String()
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", s.TableName, strings.Join(defs, ", "))
}

// InsertStatement: INSERT INTO t VALUES (v1, v2)
type InsertStatement struct {
	TableName *Identifier
	Values    []*Literal
}

func (s *InsertStatement) statementNode()       {}
func (s *InsertStatement) TokenLiteral() string { return "INSERT" }
func (s *InsertStatement) String() string {
	var out bytes.Buffer
	out.WriteString("INSERT INTO ")
	out.WriteString(s.TableName.String())
	out.WriteString(" VALUES (")
	for i, v := range s.Values {
		out.WriteString(v.String())
		if i < len(s.Values)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(")")
	return out.String()
}

// UpdateStatement: UPDATE t SET col = v WHERE pk = v
type UpdateStatement struct {
	TableName *Identifier
	Set       *Condition
	Where     *Condition
}

func (s *UpdateStatement) statementNode()       {}
func (s *UpdateStatement) TokenLiteral() string { return "UPDATE" }
func (s *UpdateStatement) String() string {
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s", s.TableName, s.Set, s.Where)
}

// DeleteStatement: DELETE FROM t WHERE pk = v
type DeleteStatement struct {
	TableName *Identifier
	Where     *Condition
}

func (s *DeleteStatement) statementNode()       {}
func (s *DeleteStatement) TokenLiteral() string { return "DELETE" }
func (s *DeleteStatement) String() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s", s.TableName, s.Where)
}

// SelectStatement: SELECT col1, col2 FROM table [WHERE col = v]
type SelectStatement struct {
	Fields    []*Identifier
	TableName *Identifier
	Where     *Condition // nil selects every row
}

func (s *SelectStatement) statementNode()       {}
func (s *SelectStatement) TokenLiteral() string { return "SELECT" }
func (s *SelectStatement) String() string {
	var out bytes.Buffer
	out.WriteString("SELECT ")
	for i, f := range s.Fields {
		out.WriteString(f.String())
		if i < len(s.Fields)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(" FROM ")
	out.WriteString(s.TableName.String())
	if s.Where != nil {
		out.WriteString(" WHERE ")
		out.WriteString(s.Where.String())
	}
	return out.String()
}

// CreateIndexStatement: CREATE INDEX ON t (col)
type CreateIndexStatement struct {
	TableName *Identifier
	Column    *Identifier
}

func (s *CreateIndexStatement) statementNode()       {}
func (s *CreateIndexStatement) TokenLiteral() string { return "CREATE" }
func (s *CreateIndexStatement) String() string {
	return fmt.Sprintf("CREATE INDEX ON %s (%s)", s.TableName, s.Column)
}

// ReindexStatement: REINDEX t (col)
type ReindexStatement struct {
	TableName *Identifier
	Column    *Identifier
}

func (s *ReindexStatement) statementNode()       {}
func (s *ReindexStatement) TokenLiteral() string { return "REINDEX" }
func (s *ReindexStatement) String() string {
	return fmt.Sprintf("REINDEX %s (%s)", s.TableName, s.Column)
}

// LookupStatement: LOOKUP t (col) = v
type LookupStatement struct {
	TableName *Identifier
	Column    *Identifier
	Value     *Literal
}

func (s *LookupStatement) statementNode()       {}
func (s *LookupStatement) TokenLiteral() string { return "LOOKUP" }
func (s *LookupStatement) String() string {
	return fmt.Sprintf("LOOKUP %s (%s) = %s", s.TableName, s.Column, s.Value)
}

// ShowTablesStatement: SHOW TABLES
type ShowTablesStatement struct{}

func (s *ShowTablesStatement) statementNode()       {}
func (s *ShowTablesStatement) TokenLiteral() string { return "SHOW" }
func (s *ShowTablesStatement) String() string       { return "SHOW TABLES" }

// FSStatement is a filesystem command such as LS, CD or TOUCH
type FSStatement struct {
	Command string   // upper-case command keyword
	Args    []string // names, paths and file content
}

func (s *FSStatement) statementNode()       {}
func (s *FSStatement) TokenLiteral() string { return s.Command }
func (s *FSStatement) String() string {
	if len(s.Args) == 0 {
		return s.Command
	}
	return s.Command + " " + strings.Join(s.Args, " ")
}
