package intro

import (
	"errors"
	"io/fs"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"introserve/internal/docfs"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"primary/app.html":    {Data: []byte(`<h1>App</h1><h2 id="o">Overview</h2>`)},
		"primary/broken.html": {Data: []byte(`<p>{{</p>`)},
		"fallback/app.html":   {Data: []byte(`<h1>Shadowed App</h1>`)},
		"fallback/extra.html": {Data: []byte(`<h1>Extra</h1><p>body</p>`)},
	}
}

func newTestSource(fsys fs.FS) *Source {
	return NewSource(docfs.NewFS(fsys), SourceConfig{Roots: []string{"primary", "fallback"}})
}

func TestSource_Get(t *testing.T) {
	src := newTestSource(testFS())

	art, err := src.Get("app")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.Title == nil || *art.Title != "App" {
		t.Errorf("expected title %q, got %v", "App", art.Title)
	}
	if len(art.TOC) != 1 || art.TOC[0].Anchor != "o" {
		t.Errorf("unexpected toc %+v", art.TOC)
	}
}

func TestSource_FirstRootWins(t *testing.T) {
	src := newTestSource(testFS())

	art, err := src.Get("app")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.Title == nil || *art.Title == "Shadowed App" {
		t.Errorf("expected primary copy to win, got title %v", art.Title)
	}
}

func TestSource_FallsBackToLaterRoot(t *testing.T) {
	src := newTestSource(testFS())

	art, err := src.Get("extra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.Title == nil || *art.Title != "Extra" {
		t.Errorf("expected title %q, got %v", "Extra", art.Title)
	}
}

func TestSource_NotFound(t *testing.T) {
	src := newTestSource(testFS())

	_, err := src.Get("missing")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
	if notFound.Key != "missing" {
		t.Errorf("expected key %q in error, got %q", "missing", notFound.Key)
	}
	if !strings.Contains(err.Error(), `"missing"`) {
		t.Errorf("expected error message to name the key, got %q", err.Error())
	}
	// The last miss stays reachable through the chain.
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected error chain to satisfy fs.ErrNotExist, got %v", err)
	}
}

func TestSource_NoRootsConfigured(t *testing.T) {
	src := NewSource(docfs.NewFS(testFS()), SourceConfig{})

	_, err := src.Get("app")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Err != nil {
		t.Errorf("expected no underlying error, got %v", notFound.Err)
	}
}

func TestSource_BuildErrorStopsFallback(t *testing.T) {
	// "broken" exists in primary with a bad body; the build failure
	// must propagate instead of sliding to the fallback root.
	fsys := testFS()
	fsys["fallback/broken.html"] = &fstest.MapFile{Data: []byte(`<p>fine</p>`)}
	src := newTestSource(fsys)

	_, err := src.Get("broken")
	if err == nil {
		t.Fatal("expected build error")
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		t.Fatalf("expected a non-NotFound failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "compile intro template") {
		t.Errorf("expected compile error, got %v", err)
	}
}

func TestSource_MemoizesPerResolvedPath(t *testing.T) {
	src := newTestSource(testFS())

	first, err := src.Get("app")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := src.Get("app")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected repeated Get to return the same artifact")
	}

	// A key that normalizes to the same file shares the artifact.
	aliased, err := src.Get("app.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aliased != first {
		t.Error("expected normalized key to hit the same cache entry")
	}
}

func TestSource_ItemAliasesGet(t *testing.T) {
	src := newTestSource(testFS())

	a, err := src.Item("app")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := src.Get("app")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Error("expected Item and Get to share the cached artifact")
	}
}

func TestSource_DottedKeyResolvesUnderscoredFile(t *testing.T) {
	fsys := fstest.MapFS{
		"primary/experimental_storage.html": {Data: []byte(`<h1>Storage</h1>`)},
	}
	src := NewSource(docfs.NewFS(fsys), SourceConfig{Roots: []string{"primary"}})

	art, err := src.Get("experimental.storage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.Title == nil || *art.Title != "Storage" {
		t.Errorf("expected title %q, got %v", "Storage", art.Title)
	}
}

func TestSource_RecordsBuildStats(t *testing.T) {
	src := newTestSource(testFS())

	if _, err := src.Get("app"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Cache hits must not add samples.
	if _, err := src.Get("app"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := src.Stats().Snapshot()
	if snap.Count != 1 {
		t.Errorf("expected 1 build sample, got %d", snap.Count)
	}
}

// countingReader counts ReadFile calls per path.
type countingReader struct {
	inner docfs.FileReader
	mu    sync.Mutex
	reads map[string]int
}

func (r *countingReader) ReadFile(path string) ([]byte, error) {
	r.mu.Lock()
	r.reads[path]++
	r.mu.Unlock()
	return r.inner.ReadFile(path)
}

func TestSource_ConcurrentGetsShareOneBuild(t *testing.T) {
	reader := &countingReader{inner: docfs.NewFS(testFS()), reads: make(map[string]int)}
	src := NewSource(reader, SourceConfig{Roots: []string{"primary", "fallback"}})

	const callers = 12
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := src.Get("app"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	reader.mu.Lock()
	defer reader.mu.Unlock()
	if n := reader.reads["primary/app.html"]; n != 1 {
		t.Errorf("expected 1 read of the source file, got %d", n)
	}
}

func TestSource_UnsupportedExtensionPropagates(t *testing.T) {
	fsys := fstest.MapFS{
		"primary/app.xyz": {Data: []byte(`<h1>T</h1>`)},
	}
	src := NewSource(docfs.NewFS(fsys), SourceConfig{Roots: []string{"primary"}, Ext: ".xyz"})

	_, err := src.Get("app")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		t.Fatalf("expected a non-NotFound failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "unsupported source extension") {
		t.Errorf("expected unsupported-extension error, got %v", err)
	}
}
