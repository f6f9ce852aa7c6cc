package fsutil

import (
	"io/fs"
	"log/slog"
	"time"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/logging"
	"github.com/d-kuro/fsprobe/internal/pathutil"
)

// Kind selects which entries a listing returns.
type Kind int

const (
	KindAll Kind = iota
	KindFiles
	KindDirs
)

// ParseKind maps "files", "dirs" and "all" (or "") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "all":
		return KindAll, nil
	case "files", "file":
		return KindFiles, nil
	case "dirs", "dir", "directories":
		return KindDirs, nil
	}
	return KindAll, errors.ValidationWithDetails("invalid listing kind", s)
}

// Entry describes one directory entry, with symlinks resolved.
type Entry struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	IsDir     bool      `json:"is_dir"`
	IsRegular bool      `json:"is_regular"`
	Size      int64     `json:"size"`
	ModTime   time.Time `json:"modified"`
}

// Prober runs filesystem checks against a FileSystem.
type Prober struct {
	fs     FileSystem
	logger *logging.Logger
}

// NewProber creates a Prober. A nil logger discards output.
func NewProber(fsys FileSystem, logger *logging.Logger) *Prober {
	if fsys == nil {
		fsys = NewOSFileSystem()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Prober{fs: fsys, logger: logger}
}

// FileSystem returns the underlying FileSystem.
func (p *Prober) FileSystem() FileSystem {
	return p.fs
}

// Exists reports whether path can be stat'ed.
func (p *Prober) Exists(path string) bool {
	_, err := p.fs.Stat(path)
	return err == nil
}

// DirExists reports whether path can be opened and listed as a directory.
func (p *Prober) DirExists(path string) bool {
	_, err := p.fs.ReadDir(path)
	return err == nil
}

// IsFile reports whether path is a regular file. Stat failures are false.
func (p *Prober) IsFile(path string) bool {
	info, err := p.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path is a directory. Stat failures are false.
func (p *Prober) IsDir(path string) bool {
	info, err := p.fs.Stat(path)
	return err == nil && info.IsDir()
}

// LastModified returns the modification time of path.
func (p *Prober) LastModified(path string) (time.Time, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, errors.NotFound("file '" + path + "' does not exist")
		}
		return time.Time{}, errors.Wrap(err, "stat %s", path)
	}
	return info.ModTime(), nil
}

// Size returns the size of path in bytes.
func (p *Prober) Size(path string) (int64, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		return 0, wrapFSError(err, "stat "+path)
	}
	return info.Size(), nil
}

// MkdirAll creates path and every missing parent. An existing directory is
// not an error.
func (p *Prober) MkdirAll(path string) error {
	dir := pathutil.Format(path)
	if dir == "" {
		return errors.Validation("directory path cannot be empty")
	}
	if err := p.fs.MkdirAll(dir, 0o755); err != nil {
		p.logger.Error("Couldn't create directory", slog.String("dir", dir), slog.Any("error", err))
		return wrapFSError(err, "create directory "+dir)
	}
	return nil
}

// List returns the entries of dir of the requested kind, one level deep.
// An unreadable directory is logged and reported as an error.
func (p *Prober) List(dir string, kind Kind) ([]Entry, error) {
	des, err := p.fs.ReadDir(dir)
	if err != nil {
		p.logger.Error("Couldn't open the directory", slog.String("dir", dir), slog.Any("error", err))
		return nil, wrapFSError(err, "open directory "+dir)
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		name := de.Name()
		if name == "." || name == ".." {
			continue
		}
		full := pathutil.Join(dir, name)
		info, err := p.fs.Stat(full)
		if err != nil {
			// dangling symlinks and entries removed mid-listing
			p.logger.Debug("Skipping entry", slog.String("path", full), slog.Any("error", err))
			continue
		}

		e := Entry{
			Name:      name,
			Path:      full,
			IsDir:     info.IsDir(),
			IsRegular: info.Mode().IsRegular(),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		}
		switch kind {
		case KindFiles:
			if !e.IsRegular {
				continue
			}
		case KindDirs:
			if !e.IsDir {
				continue
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ListFiles returns the regular files directly inside dir.
func (p *Prober) ListFiles(dir string) ([]Entry, error) {
	return p.List(dir, KindFiles)
}

// ListDirs returns the directories directly inside dir.
func (p *Prober) ListDirs(dir string) ([]Entry, error) {
	return p.List(dir, KindDirs)
}

func wrapFSError(err error, op string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errors.Join(errors.NotFound(op), err)
	case errors.Is(err, fs.ErrPermission):
		return errors.Permission(op, err)
	default:
		return errors.Wrap(err, "%s", op)
	}
}
