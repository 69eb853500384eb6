package executor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/fs"
	"github.com/leengari/toyengine/internal/parser/ast"
)

var (
	ErrNoSuchPath  = errors.New("no such file or directory")
	ErrNotDir      = errors.New("not a directory")
	ErrIsDir       = errors.New("is a directory")
	ErrNameInvalid = errors.New("name already exists or is invalid")
)

const timeLayout = "2006-01-02 15:04:05"

func (s *Session) executeFS(stmt *ast.FSStatement) *engine.QueryResult {
	arg := func(i int, def string) string {
		if i < len(stmt.Args) {
			return stmt.Args[i]
		}
		return def
	}

	switch stmt.Command {
	case "PWD":
		return engine.NewMessageResult(s.fsys.Path(s.fsys.Cwd()), 0)
	case "LS":
		return s.fsList(arg(0, "."))
	case "CD":
		if !s.fsys.ChangeDirectory(stmt.Args[0]) {
			return s.fsFailure(stmt.Args[0])
		}
		return engine.NewMessageResult(s.fsys.Path(s.fsys.Cwd()), 0)
	case "MKDIR":
		if s.fsys.CreateDirectory(stmt.Args[0]) == nil {
			return engine.NewErrorResult(fmt.Errorf("mkdir %s: %w", stmt.Args[0], ErrNameInvalid))
		}
		return engine.NewMessageResult(fmt.Sprintf("Directory '%s' created", stmt.Args[0]), 1)
	case "TOUCH":
		if s.fsys.CreateFile(stmt.Args[0], arg(1, "")) == nil {
			return engine.NewErrorResult(fmt.Errorf("touch %s: %w", stmt.Args[0], ErrNameInvalid))
		}
		return engine.NewMessageResult(fmt.Sprintf("File '%s' created", stmt.Args[0]), 1)
	case "CAT":
		node := s.fsys.ResolvePath(stmt.Args[0])
		f, ok := node.(*fs.File)
		if !ok {
			if node != nil {
				return engine.NewErrorResult(fmt.Errorf("cat %s: %w", stmt.Args[0], ErrIsDir))
			}
			return s.fsFailure(stmt.Args[0])
		}
		return engine.NewMessageResult(f.Content(), 0)
	case "DU":
		return s.fsDiskUsage(arg(0, "."))
	case "RM":
		if !s.fsys.Remove(stmt.Args[0]) {
			return engine.NewErrorResult(fmt.Errorf("rm %s: %w", stmt.Args[0], ErrNoSuchPath))
		}
		return engine.NewMessageResult(fmt.Sprintf("Removed '%s'", stmt.Args[0]), 1)
	case "TREE":
		return s.fsTree(arg(0, "."))
	default:
		return engine.NewErrorResult(fmt.Errorf("unsupported filesystem command: %s", stmt.Command))
	}
}

// fsFailure explains why path could not be used as a directory
func (s *Session) fsFailure(path string) *engine.QueryResult {
	if node := s.fsys.ResolvePath(path); node != nil && !node.IsDir() {
		return engine.NewErrorResult(fmt.Errorf("%s: %w", path, ErrNotDir))
	}
	return engine.NewErrorResult(fmt.Errorf("%s: %w", path, ErrNoSuchPath))
}

func nodeRow(n fs.Node) engine.Row {
	kind := "file"
	if n.IsDir() {
		kind = "dir"
	}
	return engine.Row{n.Name(), kind, int64(n.Size()), n.ModifiedAt().Format(timeLayout)}
}

func (s *Session) fsList(path string) *engine.QueryResult {
	node := s.fsys.ResolvePath(path)
	if node == nil {
		return engine.NewErrorResult(fmt.Errorf("ls %s: %w", path, ErrNoSuchPath))
	}

	columns := []string{"name", "type", "size", "modified"}
	dir, ok := node.(*fs.Directory)
	if !ok {
		return engine.NewQueryResult(columns, []engine.Row{nodeRow(node)}, 1)
	}

	var rows []engine.Row
	for _, child := range dir.Children() {
		rows = append(rows, nodeRow(child))
	}
	return engine.NewQueryResult(columns, rows, len(rows))
}

func (s *Session) fsDiskUsage(path string) *engine.QueryResult {
	node := s.fsys.ResolvePath(path)
	if node == nil {
		return engine.NewErrorResult(fmt.Errorf("du %s: %w", path, ErrNoSuchPath))
	}
	size := node.Size()
	row := engine.Row{s.fsys.Path(node), int64(size), humanize.Bytes(uint64(size))}
	return engine.NewQueryResult([]string{"path", "bytes", "size"}, []engine.Row{row}, 1)
}

func (s *Session) fsTree(path string) *engine.QueryResult {
	node := s.fsys.ResolvePath(path)
	if node == nil {
		return engine.NewErrorResult(fmt.Errorf("tree %s: %w", path, ErrNoSuchPath))
	}

	var rows []engine.Row
	fs.Walk(node, func(n fs.Node, depth int) {
		name := n.Name()
		if n.IsDir() {
			name += "/"
		}
		rows = append(rows, engine.Row{strings.Repeat("  ", depth) + name, int64(n.Size())})
	})
	return engine.NewQueryResult([]string{"node", "bytes"}, rows, len(rows))
}
