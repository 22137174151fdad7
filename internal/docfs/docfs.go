// Package docfs abstracts file access for intro sources.
package docfs

import (
	"io/fs"
	"os"
)

// FileReader reads a source file by path. Implementations report
// missing files with an error satisfying errors.Is(err, fs.ErrNotExist)
// so callers can tell "not here" from a real failure.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// OS reads files from the local filesystem.
type OS struct{}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FS adapts any fs.FS into a FileReader.
type FS struct {
	fsys fs.FS
}

// NewFS wraps fsys, typically an embed.FS or fstest.MapFS.
func NewFS(fsys fs.FS) FS {
	return FS{fsys: fsys}
}

func (f FS) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(f.fsys, path)
}
