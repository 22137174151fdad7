package intro

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"time"

	"introserve/internal/convert"
	"introserve/internal/docfs"
	"introserve/internal/docpath"
)

// SourceConfig configures a Source. Zero values fall back to an
// ".html" extension and a one-hour stats window.
type SourceConfig struct {
	Roots       []string // ordered base paths, first hit wins
	Ext         string   // source extension used to format keys
	StatsWindow time.Duration
}

// Source resolves logical keys like "app" or "experimental.storage" to
// built artifacts. Base paths are consulted in order and the first one
// whose file exists wins. Artifacts are memoized per resolved file
// path, so keys that normalize to the same file share one build.
type Source struct {
	reader  docfs.FileReader
	builder *Builder
	cache   Cache
	stats   *BuildStats
	roots   []string
	ext     string
}

// NewSource builds a Source over reader with its own cache and the
// default html/template compiler.
func NewSource(reader docfs.FileReader, cfg SourceConfig) *Source {
	return NewSourceWithCache(reader, NewArtifactCache(), cfg)
}

// NewSourceWithCache is NewSource with a caller-provided cache, for
// sharing one cache between sources or instrumenting cache behavior.
func NewSourceWithCache(reader docfs.FileReader, cache Cache, cfg SourceConfig) *Source {
	if cfg.Ext == "" {
		cfg.Ext = ".html"
	}
	return &Source{
		reader:  reader,
		builder: NewBuilder(nil),
		cache:   cache,
		stats:   NewBuildStats(cfg.StatsWindow),
		roots:   cfg.Roots,
		ext:     cfg.Ext,
	}
}

// Get resolves key, building and caching its artifact on first use.
// Only a missing file moves resolution to the next base path; any
// other failure propagates immediately and is not cached. When every
// path misses, the returned error is a *NotFoundError wrapping the
// last miss.
func (s *Source) Get(key string) (*Artifact, error) {
	rel := docpath.FormatKey(key, s.ext)
	var lastErr error
	for _, root := range s.roots {
		a, err := s.cache.GetOrBuild(path.Join(root, rel), s.buildFile)
		if err == nil {
			return a, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, &NotFoundError{Key: key, Err: lastErr}
}

// Item returns the artifact for key. It is equivalent to Get and
// exists for callers that treat the source as a lookup table.
func (s *Source) Item(key string) (*Artifact, error) {
	return s.Get(key)
}

// Cache exposes the artifact cache for inspection and flushing.
func (s *Source) Cache() Cache { return s.cache }

// Stats exposes the rolling build statistics.
func (s *Source) Stats() *BuildStats { return s.stats }

func (s *Source) buildFile(p string) (*Artifact, error) {
	start := time.Now()

	data, err := s.reader.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read intro source: %w", err)
	}
	conv, err := convert.ForPath(p)
	if err != nil {
		return nil, err
	}
	markup, err := conv.Convert(data)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", p, err)
	}
	a, err := s.builder.Build(p, markup)
	if err != nil {
		return nil, err
	}

	s.stats.Record(time.Since(start).Milliseconds())
	return a, nil
}
