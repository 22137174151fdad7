// Package warmup primes the intro cache at startup.
package warmup

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"introserve/internal/intro"
)

// Warmer walks the configured base paths and prebuilds every
// key-addressable source through the resolver, so first requests hit a
// warm cache.
type Warmer struct {
	src         *intro.Source
	roots       []string
	ext         string
	concurrency int
	log         *slog.Logger
}

func New(src *intro.Source, roots []string, ext string, concurrency int, log *slog.Logger) *Warmer {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Warmer{
		src:         src,
		roots:       roots,
		ext:         ext,
		concurrency: concurrency,
		log:         log,
	}
}

// Run warms the cache and reports how many keys were built and how
// many failed. Each key resolves through the normal base-path order,
// so a file shadowed by an earlier root warms the winning copy.
// Failures are logged and skipped; they never abort the run.
func (w *Warmer) Run(ctx context.Context) (warmed, failed int) {
	keys := w.collectKeys()
	if len(keys) == 0 {
		w.log.Info("warmup found no sources", "roots", w.roots)
		return 0, 0
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, w.concurrency)
	)
	for _, key := range keys {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(key string) {
			defer wg.Done()
			defer func() { <-sem }()
			if _, err := w.src.Get(key); err != nil {
				w.log.Warn("warmup build failed", "key", key, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			mu.Lock()
			warmed++
			mu.Unlock()
		}(key)
	}
	wg.Wait()

	w.log.Info("warmup complete", "warmed", warmed, "failed", failed)
	return warmed, failed
}

// collectKeys derives the logical key for every source file under the
// roots: the slash path relative to its root, extension stripped.
// Files whose derived key would not format back to the same file name
// (dots beyond the extension) are not key-addressable and are skipped,
// as are unreadable directory entries.
func (w *Warmer) collectKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, root := range w.roots {
		filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() || filepath.Ext(p) != w.ext {
				return nil
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return nil
			}
			key := strings.TrimSuffix(filepath.ToSlash(rel), w.ext)
			if strings.Contains(key, ".") || seen[key] {
				return nil
			}
			seen[key] = true
			keys = append(keys, key)
			return nil
		})
	}
	return keys
}
