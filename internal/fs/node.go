// Package fs is an in-memory hierarchical file store: a tree of named
// directories and files with shell-style path resolution.
package fs

import "time"

// Node is either a *Directory or a *File
type Node interface {
	Name() string
	// Parent is a non-owning back reference; nil for the root and for detached nodes.
	Parent() *Directory
	CreatedAt() time.Time
	ModifiedAt() time.Time
	// Size is computed on every call, never cached.
	Size() int
	IsDir() bool

	setParent(*Directory)
}

// base carries the fields shared by files and directories
type base struct {
	name     string
	parent   *Directory
	created  time.Time
	modified time.Time
	now      func() time.Time
}

func newBase(name string, now func() time.Time) base {
	if now == nil {
		now = time.Now
	}
	ts := now()
	return base{name: name, created: ts, modified: ts, now: now}
}

func (b *base) Name() string           { return b.name }
func (b *base) Parent() *Directory     { return b.parent }
func (b *base) CreatedAt() time.Time   { return b.created }
func (b *base) ModifiedAt() time.Time  { return b.modified }
func (b *base) setParent(d *Directory) { b.parent = d }
func (b *base) touch()                 { b.modified = b.now() }
