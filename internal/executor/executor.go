package executor

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/fs"
	"github.com/leengari/toyengine/internal/parser"
	"github.com/leengari/toyengine/internal/parser/ast"
)

var (
	ErrTableExists   = errors.New("table already exists")
	ErrTableNotFound = errors.New("table not found")
	ErrIndexExists   = errors.New("index already exists")
	ErrIndexNotFound = errors.New("index not found")
)

// Session holds the tables, indexes and filesystem that statements run against.
// A session serves one caller at a time.
type Session struct {
	tables      map[string]*engine.Table
	indexes     map[string]*engine.Index // keyed by "table.column"
	fsys        *fs.FileSystem
	logger      *slog.Logger
	autoReindex bool
	observers   []engine.Observer
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAutoReindex makes every index created in the session rebuild itself
// after each table mutation instead of waiting for REINDEX.
func WithAutoReindex(enabled bool) Option {
	return func(s *Session) { s.autoReindex = enabled }
}

func WithFileSystem(fsys *fs.FileSystem) Option {
	return func(s *Session) {
		if fsys != nil {
			s.fsys = fsys
		}
	}
}

// WithTableObserver attaches observer to every table created in the session
func WithTableObserver(observer engine.Observer) Option {
	return func(s *Session) { s.observers = append(s.observers, observer) }
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		tables:  make(map[string]*engine.Table),
		indexes: make(map[string]*engine.Index),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fsys == nil {
		s.fsys = fs.New(fs.WithLogger(s.logger))
	}
	return s
}

func (s *Session) FileSystem() *fs.FileSystem { return s.fsys }

// Table returns the named table
func (s *Session) Table(name string) (*engine.Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// TableNames lists the session's tables alphabetically
func (s *Session) TableNames() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute parses and runs one statement. Syntax errors are returned as
// errors; failures of a well-formed statement come back as a result with
// HasError set.
func (s *Session) Execute(input string) (*engine.QueryResult, error) {
	stmt, err := parser.ParseString(input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	s.logger.Debug("statement parsed", "type", fmt.Sprintf("%T", stmt))

	res := s.ExecuteStatement(stmt)
	if res.HasError() {
		s.logger.Debug("statement failed", "statement", stmt.String(), "error", res.Err())
	}
	return res, nil
}

// ExecuteStatement runs an already parsed statement
func (s *Session) ExecuteStatement(stmt ast.Statement) *engine.QueryResult {
	switch st := stmt.(type) {
	case *ast.CreateTableStatement:
		return s.executeCreateTable(st)
	case *ast.InsertStatement:
		return s.executeInsert(st)
	case *ast.UpdateStatement:
		return s.executeUpdate(st)
	case *ast.DeleteStatement:
		return s.executeDelete(st)
	case *ast.SelectStatement:
		return s.executeSelect(st)
	case *ast.CreateIndexStatement:
		return s.executeCreateIndex(st)
	case *ast.ReindexStatement:
		return s.executeReindex(st)
	case *ast.LookupStatement:
		return s.executeLookup(st)
	case *ast.ShowTablesStatement:
		return s.executeShowTables()
	case *ast.FSStatement:
		return s.executeFS(st)
	default:
		return engine.NewErrorResult(fmt.Errorf("unsupported statement type: %T", stmt))
	}
}

func (s *Session) table(name string) (*engine.Table, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return t, nil
}

func (s *Session) executeCreateTable(stmt *ast.CreateTableStatement) *engine.QueryResult {
	name := stmt.TableName.Value
	if _, exists := s.tables[name]; exists {
		return engine.NewErrorResult(fmt.Errorf("%w: %s", ErrTableExists, name))
	}

	seen := make(map[string]bool, len(stmt.Columns))
	columns := make([]*engine.Column, 0, len(stmt.Columns))
	for _, def := range stmt.Columns {
		if seen[def.Name.Value] {
			return engine.NewErrorResult(fmt.Errorf("duplicate column %s in table %s", def.Name.Value, name))
		}
		seen[def.Name.Value] = true

		dt, err := engine.ParseDataType(def.Type)
		if err != nil {
			return engine.NewErrorResult(fmt.Errorf("column %s: %w", def.Name.Value, err))
		}
		var opts []engine.ColumnOption
		if def.PrimaryKey {
			opts = append(opts, engine.PrimaryKey())
		}
		if def.NotNull {
			opts = append(opts, engine.NotNull())
		}
		columns = append(columns, engine.NewColumn(def.Name.Value, dt, opts...))
	}

	table := engine.NewTable(name, columns, engine.WithLogger(s.logger))
	for _, observer := range s.observers {
		table.AddObserver(observer)
	}
	s.tables[name] = table

	s.logger.Info("table created", "table", name, "columns", len(columns))
	return engine.NewMessageResult(fmt.Sprintf("Table '%s' created", name), 0)
}

func (s *Session) executeShowTables() *engine.QueryResult {
	var rows []engine.Row
	for _, name := range s.TableNames() {
		t := s.tables[name]
		rows = append(rows, engine.Row{name, int64(len(t.Columns())), int64(t.Len())})
	}
	return engine.NewQueryResult([]string{"table", "columns", "rows"}, rows, len(rows))
}

func literalValues(lits []*ast.Literal) []any {
	values := make([]any, len(lits))
	for i, lit := range lits {
		values[i] = lit.Value
	}
	return values
}
