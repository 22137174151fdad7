package intro

import "sync"

// BuildFunc produces the artifact for a resolved file path.
type BuildFunc func(path string) (*Artifact, error)

// Cache memoizes built artifacts by resolved file path.
type Cache interface {
	GetOrBuild(path string, build BuildFunc) (*Artifact, error)
	Len() int
	Flush() int
}

// ArtifactCache is an in-memory Cache. Concurrent callers asking for
// the same path share a single build, and failed builds are not
// retained, so a later call retries.
type ArtifactCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	ready    chan struct{}
	artifact *Artifact
	err      error
}

func NewArtifactCache() *ArtifactCache {
	return &ArtifactCache{entries: make(map[string]*cacheEntry)}
}

// GetOrBuild returns the cached artifact for path, building it with
// build on first use. At most one build runs per path at a time; other
// callers wait for its result.
func (c *ArtifactCache) GetOrBuild(path string, build BuildFunc) (*Artifact, error) {
	c.mu.Lock()
	if e, ok := c.entries[path]; ok {
		c.mu.Unlock()
		<-e.ready
		return e.artifact, e.err
	}
	e := &cacheEntry{ready: make(chan struct{})}
	c.entries[path] = e
	c.mu.Unlock()

	e.artifact, e.err = build(path)
	if e.err != nil {
		c.mu.Lock()
		// Only evict our own entry; a flush may have replaced it.
		if c.entries[path] == e {
			delete(c.entries, path)
		}
		c.mu.Unlock()
	}
	close(e.ready)
	return e.artifact, e.err
}

// Len reports the number of cache entries, including in-flight builds.
func (c *ArtifactCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Flush drops every entry and reports how many were evicted. In-flight
// builds finish for their current waiters but are not re-cached.
func (c *ArtifactCache) Flush() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]*cacheEntry)
	return n
}
