package fsutil

import (
	"sync/atomic"
	"time"

	"github.com/d-kuro/fsprobe/internal/logging"
)

var std atomic.Pointer[Prober]

func init() {
	std.Store(NewProber(NewOSFileSystem(), nil))
}

// SetLogger makes the package-level helpers log through l. A nil l discards.
func SetLogger(l *logging.Logger) {
	std.Store(NewProber(NewOSFileSystem(), l))
}

// Exists reports whether path can be stat'ed on the host filesystem.
func Exists(path string) bool { return std.Load().Exists(path) }

// DirExists reports whether path opens as a directory.
func DirExists(path string) bool { return std.Load().DirExists(path) }

// IsFile reports whether path is a regular file.
func IsFile(path string) bool { return std.Load().IsFile(path) }

// IsDir reports whether path is a directory.
func IsDir(path string) bool { return std.Load().IsDir(path) }

// LastModified returns the modification time of path.
func LastModified(path string) (time.Time, error) { return std.Load().LastModified(path) }

// Size returns the size of path in bytes.
func Size(path string) (int64, error) { return std.Load().Size(path) }

// MkdirAll creates path and any missing parents.
func MkdirAll(path string) error { return std.Load().MkdirAll(path) }

// List returns the entries of dir of the given kind.
func List(dir string, kind Kind) ([]Entry, error) { return std.Load().List(dir, kind) }

// ListFiles returns the regular files directly inside dir.
func ListFiles(dir string) ([]Entry, error) { return std.Load().ListFiles(dir) }

// ListDirs returns the directories directly inside dir.
func ListDirs(dir string) ([]Entry, error) { return std.Load().ListDirs(dir) }
