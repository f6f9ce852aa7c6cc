package probe

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/fsutil"
	"github.com/d-kuro/fsprobe/internal/locator"
	"github.com/d-kuro/fsprobe/internal/logging"
	"github.com/d-kuro/fsprobe/internal/pathutil"
	"github.com/d-kuro/fsprobe/internal/security"
	"github.com/d-kuro/fsprobe/internal/shell"
	"github.com/d-kuro/fsprobe/internal/tools"
)

type testLogger struct {
	*logging.Logger
}

func (l testLogger) WithTool(name string) tools.Logger {
	return testLogger{l.Logger.WithTool(name)}
}

func (l testLogger) WithSession(id string) tools.Logger {
	return testLogger{l.Logger.WithSession(id)}
}

func newTestContext(t *testing.T) *tools.Context {
	t.Helper()
	return &tools.Context{
		Logger:            testLogger{logging.Discard()},
		Validator:         security.NewDefaultValidator(),
		Finder:            locator.New(nil, nil),
		Prober:            fsutil.NewProber(nil, nil),
		Executor:          shell.NewExecutor(10 * time.Second),
		SearchRoot:        t.TempDir(),
		MaxCommandTimeout: 30 * time.Second,
	}
}

// newSandboxContext confines every tool to allowed, wired the way the
// server wires it.
func newSandboxContext(t *testing.T, allowed string) *tools.Context {
	t.Helper()
	ctx := newTestContext(t)
	v := security.NewDefaultValidator().WithAllowedPaths([]string{allowed})
	ctx.Validator = v
	ctx.Finder = locator.New(nil, nil).WithPathFilter(tools.PathFilter(v))
	ctx.SearchRoot = allowed
	return ctx
}

func writeFile(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(rel), 0o644))
	return path
}

func ptr[T any](v T) *T { return &v }

func TestLocateFile(t *testing.T) {
	ctx := newTestContext(t)
	root := t.TempDir()
	target := writeFile(t, root, "a/b/report.csv")
	writeFile(t, ctx.SearchRoot, "default/report.csv")

	res, err := locateFile(context.Background(), ctx, LocateFileArgs{Name: "report.csv", Root: ptr(root)})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, pathutil.Format(target), res.Path)
	assert.NotEmpty(t, res.Modified)
	assert.NotEmpty(t, res.Elapsed)

	res, err = locateFile(context.Background(), ctx, LocateFileArgs{Name: "some/dir/report.csv"})
	require.NoError(t, err)
	assert.True(t, res.Found, "default root is used when none is given")
	assert.Equal(t, "report.csv", res.Target)

	res, err = locateFile(context.Background(), ctx, LocateFileArgs{Name: "absent.csv", Root: ptr(root)})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Empty(t, res.Modified)
}

func TestLocateFileValidation(t *testing.T) {
	ctx := newTestContext(t)

	_, err := locateFile(context.Background(), ctx, LocateFileArgs{})
	assert.True(t, errors.Is(err, errors.ErrValidation))

	if runtime.GOOS != "windows" {
		_, err = locateFile(context.Background(), ctx, LocateFileArgs{Name: "x", Root: ptr("/proc")})
		assert.True(t, errors.Is(err, errors.ErrSecurity))
	}
}

func TestStatPath(t *testing.T) {
	ctx := newTestContext(t)
	root := t.TempDir()
	file := writeFile(t, root, "f.txt")

	res, err := statPath(ctx, StatPathArgs{Path: file})
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.True(t, res.IsFile)
	assert.False(t, res.IsDir)
	assert.EqualValues(t, len("f.txt"), res.Size)
	assert.NotEmpty(t, res.Modified)

	res, err = statPath(ctx, StatPathArgs{Path: root})
	require.NoError(t, err)
	assert.True(t, res.IsDir)

	res, err = statPath(ctx, StatPathArgs{Path: filepath.Join(root, "missing")})
	require.NoError(t, err)
	assert.False(t, res.Exists)
	assert.Empty(t, res.Modified)

	_, err = statPath(ctx, StatPathArgs{})
	assert.Error(t, err)
}

func TestListDirectory(t *testing.T) {
	ctx := newTestContext(t)
	root := t.TempDir()
	writeFile(t, root, "keep.go")
	writeFile(t, root, "skip.log")
	writeFile(t, root, "sub/inner.go")

	res, err := listDirectory(ctx, ListDirectoryArgs{Path: root, Ignore: []string{"*.log"}})
	require.NoError(t, err)
	var names []string
	for _, e := range res.Entries {
		names = append(names, e.Name)
	}
	assert.ElementsMatch(t, []string{"keep.go", "sub"}, names)

	res, err = listDirectory(ctx, ListDirectoryArgs{Path: root, Kind: "dirs"})
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "sub", res.Entries[0].Name)

	_, err = listDirectory(ctx, ListDirectoryArgs{Path: root, Kind: "pipes"})
	assert.True(t, errors.Is(err, errors.ErrValidation))

	_, err = listDirectory(ctx, ListDirectoryArgs{Path: filepath.Join(root, "missing")})
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestShouldIgnoreFile(t *testing.T) {
	assert.True(t, shouldIgnoreFile("a.log", []string{"*.txt", "*.log"}))
	assert.False(t, shouldIgnoreFile("a.go", []string{"*.log"}))
	assert.False(t, shouldIgnoreFile("a.go", nil))
}

func TestPathInfo(t *testing.T) {
	res := pathInfo(PathInfoArgs{Path: `dir\sub\file.txt`, CombineWith: ptr("/extra/")})
	assert.Equal(t, &PathInfoResult{
		Formatted: "dir/sub/file.txt",
		FileName:  "file.txt",
		Extension: ".txt",
		Stem:      "file",
		DirName:   "dir/sub",
		Combined:  "dir/sub/file.txt/extra",
	}, res)

	res = pathInfo(PathInfoArgs{Path: "bin/Makefile"})
	assert.Empty(t, res.Stem)
	assert.Empty(t, res.Extension)
	assert.Empty(t, res.Combined)
}

func TestMakeDirectory(t *testing.T) {
	ctx := newTestContext(t)
	dir := filepath.Join(t.TempDir(), "x", "y")

	got, err := makeDirectory(ctx, MakeDirectoryArgs{Path: dir})
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.True(t, fsutil.IsDir(dir))

	_, err = makeDirectory(ctx, MakeDirectoryArgs{})
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell syntax")
	}
	ctx := newTestContext(t)

	res, err := runCommand(context.Background(), ctx, RunCommandArgs{Command: "echo hi; echo oops 1>&2; exit 2"})
	require.NoError(t, err)
	assert.Equal(t, "hi\noops\n", res.Output)
	assert.Equal(t, 2, res.ExitCode)

	_, err = runCommand(context.Background(), ctx, RunCommandArgs{Command: "rm -rf /tmp/nothing"})
	assert.True(t, errors.Is(err, errors.ErrSecurity))

	_, err = runCommand(context.Background(), ctx, RunCommandArgs{Command: "echo", TimeoutMS: ptr(int(time.Hour / time.Millisecond))})
	assert.ErrorIs(t, err, errMaxTimeout)

	_, err = runCommand(context.Background(), ctx, RunCommandArgs{})
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestCreateProbeTools(t *testing.T) {
	ctx := newTestContext(t)
	registry := tools.NewRegistry()
	for _, tool := range append(CreateProbeTools(ctx), CreateCommandTools(ctx)...) {
		require.NoError(t, registry.Register(tool))
	}
	assert.Equal(t, []string{"ListDirectory", "LocateFile", "MakeDirectory", "PathInfo", "RunCommand", "StatPath"}, registry.List())
	assert.NoError(t, registry.Validate())
}

func TestSandboxSymlinkEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	allowed := t.TempDir()
	outside := t.TempDir()
	writeFile(t, outside, "secret/passwd.txt")
	require.NoError(t, os.Symlink(filepath.Join(outside, "secret"), filepath.Join(allowed, "escape")))
	ctx := newSandboxContext(t, allowed)

	_, err := listDirectory(ctx, ListDirectoryArgs{Path: filepath.Join(outside, "secret")})
	assert.True(t, errors.Is(err, errors.ErrSecurity))

	_, err = listDirectory(ctx, ListDirectoryArgs{Path: filepath.Join(allowed, "escape")})
	assert.True(t, errors.Is(err, errors.ErrSecurity))

	_, err = statPath(ctx, StatPathArgs{Path: filepath.Join(allowed, "escape", "passwd.txt")})
	assert.True(t, errors.Is(err, errors.ErrSecurity))

	res, err := locateFile(context.Background(), ctx, LocateFileArgs{Name: "passwd.txt", Root: ptr(allowed)})
	require.NoError(t, err)
	assert.False(t, res.Found, "the search must not follow a link out of the allowed root")
	assert.Empty(t, res.Path)

	inside := writeFile(t, allowed, "etc/passwd.txt")
	res, err = locateFile(context.Background(), ctx, LocateFileArgs{Name: "passwd.txt"})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, pathutil.Format(inside), res.Path)
}

func TestLocateFileSkipsLinkedFileOutsideSandbox(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	allowed := t.TempDir()
	outside := writeFile(t, t.TempDir(), "token.txt")
	require.NoError(t, os.Symlink(outside, filepath.Join(allowed, "token.txt")))
	ctx := newSandboxContext(t, allowed)

	res, err := locateFile(context.Background(), ctx, LocateFileArgs{Name: "token.txt"})
	require.NoError(t, err)
	assert.False(t, res.Found)
}
