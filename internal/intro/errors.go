package intro

import "fmt"

// OrphanSubheadingError reports a third-level heading that appeared
// before any second-level heading, which leaves it with no section to
// belong to.
type OrphanSubheadingError struct {
	Anchor string
}

func (e *OrphanSubheadingError) Error() string {
	if e.Anchor == "" {
		return "intro: subheading before any section heading"
	}
	return fmt.Sprintf("intro: subheading %q before any section heading", e.Anchor)
}

// NotFoundError reports that a key matched no file under any base path.
// It wraps the last underlying lookup error, so errors.Is against
// fs.ErrNotExist keeps working across the resolver boundary.
type NotFoundError struct {
	Key string
	Err error // last miss, nil when no base paths were configured
}

func (e *NotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("intro %q not found", e.Key)
	}
	return fmt.Sprintf("intro %q not found: %v", e.Key, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }
