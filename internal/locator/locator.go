// Package locator finds a file by base name anywhere under a directory tree.
//
// The search is depth-first: the regular files of a directory are checked
// before any of its subdirectories are entered, and subdirectories are
// visited in listing order. The first match wins.
package locator

import (
	"context"
	"log/slog"
	"time"

	"github.com/d-kuro/fsprobe/internal/fsutil"
	"github.com/d-kuro/fsprobe/internal/logging"
	"github.com/d-kuro/fsprobe/internal/pathutil"
	"github.com/d-kuro/fsprobe/internal/strutil"
)

// Query describes the file being searched for and accumulates the result.
// It is owned by the caller and must not be shared across goroutines while a
// search runs.
type Query struct {
	// Target is the base name to match. When empty it is derived from Path.
	Target string

	// Found is set once a match is recorded. A found query is never modified
	// again.
	Found bool

	// Path holds the search seed and, after a match, the matched file.
	Path string

	// Modified is the matched file's modification time.
	Modified time.Time
}

// NewQuery seeds a query with a path whose final segment is the target.
func NewQuery(seed string) *Query {
	return &Query{Path: seed}
}

// Finder is implemented by Locator and CachedLocator.
type Finder interface {
	Locate(ctx context.Context, q *Query, root string) error
}

// PathFilter reports whether a directory may be entered or a matched file
// reported.
type PathFilter func(path string) bool

// Locator searches directory trees.
type Locator struct {
	probe  *fsutil.Prober
	fs     fsutil.FileSystem
	logger *logging.Logger
	allow  PathFilter
}

// New creates a Locator. A nil fsys uses the host filesystem and a nil
// logger discards output.
func New(fsys fsutil.FileSystem, logger *logging.Logger) *Locator {
	if fsys == nil {
		fsys = fsutil.NewOSFileSystem()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Locator{
		probe:  fsutil.NewProber(fsys, logger),
		fs:     fsys,
		logger: logger,
	}
}

// WithPathFilter restricts the search to paths allow accepts. Rejected
// directories are skipped like unreadable ones and rejected matches are
// passed over.
func (l *Locator) WithPathFilter(allow PathFilter) *Locator {
	l.allow = allow
	return l
}

// permits reports whether the filter, if any, accepts path.
func (l *Locator) permits(path string) bool {
	return l.allow == nil || l.allow(path)
}

// Locate searches root for q's target. Directories that cannot be listed
// are logged and skipped. A query that comes back with Found == false had no
// match anywhere under root. The only error returned is ctx's.
func (l *Locator) Locate(ctx context.Context, q *Query, root string) error {
	if q.Found {
		return nil
	}
	if q.Target == "" {
		q.Target = pathutil.FileName(q.Path)
	}

	visited := make(map[string]struct{})
	stack := []string{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !l.permits(dir) {
			l.logger.Debug("Skipping filtered directory", slog.String("dir", dir))
			continue
		}

		key := l.identity(dir)
		if _, seen := visited[key]; seen {
			l.logger.Debug("Skipping directory already searched", slog.String("dir", dir), slog.String("real", key))
			continue
		}
		visited[key] = struct{}{}

		entries, err := l.probe.List(dir, fsutil.KindAll)
		if err != nil {
			continue
		}

		var subdirs []string
		for _, e := range entries {
			if e.IsRegular && strutil.Equals(e.Name, q.Target) {
				if !l.permits(e.Path) {
					l.logger.Debug("Skipping filtered match", slog.String("path", e.Path))
					continue
				}
				q.Found = true
				q.Path = e.Path
				q.Modified = e.ModTime
				l.logger.Debug("Located file", slog.String("target", q.Target), slog.String("path", e.Path))
				return nil
			}
			if e.IsDir {
				subdirs = append(subdirs, e.Path)
			}
		}

		// reversed so the first subdirectory is popped first
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return nil
}

// identity names a directory by its resolved location so that symlink loops
// and aliases are searched once.
func (l *Locator) identity(dir string) string {
	real, err := l.fs.EvalSymlinks(dir)
	if err != nil {
		return pathutil.Format(dir)
	}
	return pathutil.Format(real)
}
