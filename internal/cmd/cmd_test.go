package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/pathutil"
	"github.com/d-kuro/fsprobe/pkg/version"
)

// run executes the root command with a config file that does not exist, so
// every run starts from the defaults.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLocate(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b"), 0o755))
	target := filepath.Join(root, "a", "target.txt")
	require.NoError(t, os.WriteFile(target, nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b", "other.txt"), nil, 0o644))

	out, _, err := run(t, "locate", "target.txt", root)
	require.NoError(t, err)
	path, _, ok := strings.Cut(strings.TrimSpace(out), "\t")
	require.True(t, ok)
	assert.Equal(t, pathutil.Format(target), path)

	_, _, err = run(t, "locate", "missing.txt", root)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestLocateDebugTiming(t *testing.T) {
	root := t.TempDir()
	_, stderr, err := run(t, "--log-level", "debug", "locate", "x.txt", root)
	require.Error(t, err)
	assert.Contains(t, stderr, "Search finished")
	assert.Contains(t, stderr, "elapsed=")
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("abc"), 0o644))

	out, _, err := run(t, "stat", file)
	require.NoError(t, err)
	assert.Contains(t, out, "type:     file")
	assert.Contains(t, out, "size:     3")

	out, _, err = run(t, "stat", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "type:     directory")

	_, _, err = run(t, "stat", filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestLs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), nil, 0o644))

	out, _, err := run(t, "ls", dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f.txt", "sub/"}, strings.Fields(out))

	out, _, err = run(t, "ls", "--dirs", dir)
	require.NoError(t, err)
	assert.Equal(t, "sub/\n", out)

	out, _, err = run(t, "ls", "--files", dir)
	require.NoError(t, err)
	assert.Equal(t, "f.txt\n", out)

	_, _, err = run(t, "ls", "--files", "--dirs", dir)
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{args: []string{"combine", "/a/", "/b"}, want: "a/b"},
		{args: []string{"base", "dir/sub/file.txt"}, want: "file.txt"},
		{args: []string{"ext", "dir/sub/file.txt"}, want: ".txt"},
		{args: []string{"stem", "archive.tar.gz"}, want: "archive.tar"},
		{args: []string{"dir", `dir\sub\file.txt`}, want: "dir/sub"},
		{args: []string{"stem", "Makefile"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, append([]string{"path"}, tt.args...)...)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestMkdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x", "y")
	_, _, err := run(t, "mkdir", dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestExec(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell syntax")
	}

	out, _, err := run(t, "exec", "printf", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	out, _, err = run(t, "exec", "echo out; echo err 1>&2; exit 3")
	assert.EqualError(t, err, "command exited with status 3")
	assert.Equal(t, "out\nerr\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.GetVersion().String()+"\n", out)

	out, _, err = run(t, "version", "--json")
	require.NoError(t, err)
	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.GetVersion().Version, info.Version)
	assert.Equal(t, version.MCPName, info.MCPName)

	out, _, err = run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.GetVersion().Version+"\n", out)

	_, _, err = run(t, "version", "--short", "--json")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "version")
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestLocateMissingRoot(t *testing.T) {
	_, _, err := run(t, "locate", "x.txt", filepath.Join(t.TempDir(), "nowhere"))
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestLsLogsUnreadableDirectory(t *testing.T) {
	_, stderr, err := run(t, "ls", filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Contains(t, stderr, "Couldn't open the directory")
}
