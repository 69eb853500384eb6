package fs

import "time"

// File is a leaf node holding a string buffer
type File struct {
	base
	content string
}

func NewFile(name string, now func() time.Time) *File {
	return &File{base: newBase(name, now)}
}

func (f *File) IsDir() bool     { return false }
func (f *File) Content() string { return f.content }

// Size is the content length in bytes
func (f *File) Size() int { return len(f.content) }

// SetContent replaces the buffer and stamps the file's modified time
func (f *File) SetContent(content string) {
	f.content = content
	f.touch()
}
