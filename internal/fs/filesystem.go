package fs

import (
	"log/slog"
	"strings"
	"time"
)

const RootName = "root"

// FileSystem owns one root directory and tracks a current directory
// inside it. Not safe for concurrent use.
type FileSystem struct {
	root   *Directory
	cwd    *Directory
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*FileSystem)

// WithClock overrides the time source used for node timestamps
func WithClock(now func() time.Time) Option {
	return func(fsys *FileSystem) {
		if now != nil {
			fsys.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(fsys *FileSystem) {
		if logger != nil {
			fsys.logger = logger
		}
	}
}

func New(opts ...Option) *FileSystem {
	fsys := &FileSystem{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(fsys)
	}
	fsys.root = NewDirectory(RootName, fsys.now)
	fsys.cwd = fsys.root
	return fsys
}

func (fsys *FileSystem) Root() *Directory { return fsys.root }
func (fsys *FileSystem) Cwd() *Directory  { return fsys.cwd }

// ChangeDirectory moves the current directory to path if it resolves to a
// directory. Otherwise nothing changes.
func (fsys *FileSystem) ChangeDirectory(path string) bool {
	dir, ok := fsys.ResolvePath(path).(*Directory)
	if !ok {
		return false
	}
	fsys.cwd = dir
	return true
}

// CreateFile adds a file to the current directory. It returns nil if the
// name is invalid or already used there.
func (fsys *FileSystem) CreateFile(name, content string) *File {
	if !validName(name) {
		return nil
	}
	if _, exists := fsys.cwd.Child(name); exists {
		fsys.logger.Debug("name already taken", "dir", fsys.Path(fsys.cwd), "name", name)
		return nil
	}
	f := NewFile(name, fsys.now)
	f.SetContent(content)
	fsys.cwd.AddChild(f)
	return f
}

// CreateDirectory adds an empty directory to the current directory. It
// returns nil if the name is invalid or already used there.
func (fsys *FileSystem) CreateDirectory(name string) *Directory {
	if !validName(name) {
		return nil
	}
	if _, exists := fsys.cwd.Child(name); exists {
		fsys.logger.Debug("name already taken", "dir", fsys.Path(fsys.cwd), "name", name)
		return nil
	}
	d := NewDirectory(name, fsys.now)
	fsys.cwd.AddChild(d)
	return d
}

// Remove detaches the named child of the current directory
func (fsys *FileSystem) Remove(name string) bool {
	return fsys.cwd.RemoveChild(name)
}

// ResolvePath walks path from the root (leading "/") or from the current
// directory. "" and "." stay put, ".." climbs and stops at the root. It
// returns nil if a segment is missing or names a file that is not last.
func (fsys *FileSystem) ResolvePath(path string) Node {
	if path == "/" {
		return fsys.root
	}

	var current Node = fsys.cwd
	if strings.HasPrefix(path, "/") {
		current = fsys.root
		path = path[1:]
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		switch seg {
		case "", ".":
			continue
		case "..":
			if parent := current.Parent(); parent != nil {
				current = parent
			} else {
				current = fsys.root
			}
			continue
		}

		dir, ok := current.(*Directory)
		if !ok {
			return nil
		}
		child, ok := dir.Child(seg)
		if !ok {
			return nil
		}
		if i < len(segments)-1 {
			if _, isDir := child.(*Directory); !isDir {
				return nil
			}
		}
		current = child
	}
	return current
}

// Path returns the absolute path of node, "/" for the root. A node that has
// been detached from the tree reports the path of its detached subtree.
func (fsys *FileSystem) Path(node Node) string {
	if node == nil {
		return ""
	}
	var parts []string
	for n := node; n != nil && n != Node(fsys.root); {
		parts = append(parts, n.Name())
		parent := n.Parent()
		if parent == nil {
			break
		}
		n = parent
	}
	if len(parts) == 0 {
		return "/"
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "/" + strings.Join(parts, "/")
}

// Walk visits node and its descendants in pre-order, children in insertion
// order. depth is 0 for node itself.
func Walk(node Node, fn func(n Node, depth int)) {
	walk(node, 0, fn)
}

func walk(node Node, depth int, fn func(Node, int)) {
	fn(node, depth)
	if dir, ok := node.(*Directory); ok {
		for _, child := range dir.Children() {
			walk(child, depth+1, fn)
		}
	}
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, "/")
}
