// Package probe provides the fsprobe MCP tools: locating files, inspecting
// and listing paths, splitting path strings, creating directories and
// running commands.
package probe

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/tools"
)

// requestLogger tags a tool's logger with a fresh request id.
func requestLogger(ctx *tools.Context, toolName string) tools.Logger {
	return ctx.Logger.WithTool(toolName).WithSession(uuid.NewString())
}

// resolvePath makes p absolute against the working directory and runs it
// through the validator.
func resolvePath(ctx *tools.Context, p string) (string, error) {
	if p == "" {
		return "", errors.Validation("path cannot be empty")
	}
	if !filepath.IsAbs(p) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "failed to get current working directory")
		}
		p = filepath.Join(cwd, p)
	}
	return ctx.Validator.SanitizePath(p)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
