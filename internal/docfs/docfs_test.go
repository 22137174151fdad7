package docfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestOSReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intro.html")
	if err := os.WriteFile(path, []byte("<h1>T</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := OS{}.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "<h1>T</h1>" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestOSReadFileMissing(t *testing.T) {
	_, err := OS{}.ReadFile(filepath.Join(t.TempDir(), "nope.html"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestFSReadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/app.html": {Data: []byte("<p>hi</p>")},
	}
	r := NewFS(fsys)

	data, err := r.ReadFile("docs/app.html")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "<p>hi</p>" {
		t.Errorf("unexpected content %q", data)
	}

	if _, err := r.ReadFile("docs/missing.html"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}
