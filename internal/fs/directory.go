package fs

import "time"

// Directory owns its children. Lookup is by name; listing keeps insertion order.
type Directory struct {
	base
	children map[string]Node
	order    []string
}

func NewDirectory(name string, now func() time.Time) *Directory {
	return &Directory{
		base:     newBase(name, now),
		children: make(map[string]Node),
	}
}

func (d *Directory) IsDir() bool { return true }

// AddChild registers node under its name and points its parent here.
// It returns false, changing nothing, if the name is taken.
func (d *Directory) AddChild(node Node) bool {
	if _, exists := d.children[node.Name()]; exists {
		return false
	}
	d.children[node.Name()] = node
	d.order = append(d.order, node.Name())
	node.setParent(d)
	d.touch()
	return true
}

// RemoveChild detaches the named child. The child's own descendants are
// left as they are; the detached subtree is simply no longer reachable.
func (d *Directory) RemoveChild(name string) bool {
	node, exists := d.children[name]
	if !exists {
		return false
	}
	delete(d.children, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	node.setParent(nil)
	d.touch()
	return true
}

func (d *Directory) Child(name string) (Node, bool) {
	node, ok := d.children[name]
	return node, ok
}

// Children lists the directory in insertion order
func (d *Directory) Children() []Node {
	out := make([]Node, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.children[name])
	}
	return out
}

func (d *Directory) Len() int { return len(d.children) }

// Size is the recursive sum of all descendant file sizes
func (d *Directory) Size() int {
	total := 0
	for _, child := range d.children {
		total += child.Size()
	}
	return total
}
