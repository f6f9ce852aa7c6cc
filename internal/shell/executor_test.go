package shell

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-kuro/fsprobe/internal/errors"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell syntax")
	}
}

func TestReadOutput(t *testing.T) {
	skipOnWindows(t)
	e := NewExecutor(10 * time.Second)

	tests := []struct {
		name     string
		cmdline  string
		output   string
		exitCode int
	}{
		{"stdout", "echo hello", "hello\n", 0},
		{"stderr merged", "echo out; echo err 1>&2", "out\nerr\n", 0},
		{"non-zero exit keeps output", "echo partial; exit 3", "partial\n", 3},
		{"no output", "true", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.ReadOutput(context.Background(), tt.cmdline)
			require.NoError(t, err)
			assert.Equal(t, tt.output, res.Output)
			assert.Equal(t, tt.exitCode, res.ExitCode)
			assert.NotEmpty(t, res.Elapsed)
		})
	}
}

func TestReadOutputWorkingDirectory(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	res, err := NewExecutor(0).WithDir(dir).ReadOutput(context.Background(), "ls -a")
	require.NoError(t, err)
	assert.Contains(t, res.Output, ".")
}

func TestReadOutputTimeout(t *testing.T) {
	skipOnWindows(t)
	e := NewExecutor(time.Minute)

	_, err := e.ReadOutputTimeout(context.Background(), "sleep 5", 100*time.Millisecond)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTimeout))
}

func TestReadOutputEmptyCommand(t *testing.T) {
	_, err := NewExecutor(0).ReadOutput(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestNewExecutorDefaults(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewExecutor(0).Timeout())
	assert.Equal(t, time.Second, NewExecutor(time.Second).Timeout())
}
