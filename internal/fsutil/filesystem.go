// Package fsutil probes the host filesystem: existence and type checks,
// single-level directory listings, directory creation and modification times.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is the subset of OS calls the probes need. Tests substitute
// implementations that fail on chosen paths.
type FileSystem interface {
	// Stat returns file information, following symlinks.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of a directory.
	ReadDir(name string) ([]fs.DirEntry, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string, perm fs.FileMode) error

	// EvalSymlinks returns path with every symlink resolved.
	EvalSymlinks(path string) (string, error)
}

// OSFileSystem implements FileSystem with the os and filepath packages.
type OSFileSystem struct{}

// NewOSFileSystem returns the production FileSystem.
func NewOSFileSystem() OSFileSystem {
	return OSFileSystem{}
}

// Stat calls os.Stat.
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir calls os.ReadDir.
func (OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// MkdirAll calls os.MkdirAll.
func (OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// EvalSymlinks calls filepath.EvalSymlinks.
func (OSFileSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
