// Package tools provides tool registry and common types for MCP tools.
package tools

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/fsprobe/internal/fsutil"
	"github.com/d-kuro/fsprobe/internal/locator"
	"github.com/d-kuro/fsprobe/internal/shell"
)

// ServerTool pairs a tool definition with the function that registers its
// typed handler on a server.
type ServerTool struct {
	Tool         *mcp.Tool
	RegisterFunc func(server *mcp.Server)
}

// Context contains common dependencies needed by tools.
type Context struct {
	Logger    Logger
	Validator Validator

	// Finder answers LocateFile requests.
	Finder locator.Finder

	// Prober runs stat, listing and mkdir requests.
	Prober *fsutil.Prober

	// Executor runs RunCommand requests.
	Executor *shell.Executor

	// SearchRoot is used when LocateFile is called without a root.
	SearchRoot string

	// MaxCommandTimeout caps the per-call timeout of RunCommand.
	MaxCommandTimeout time.Duration
}

// Logger defines the logging interface for tools.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithTool(toolName string) Logger
	WithSession(sessionID string) Logger
}

// Validator defines the security validation interface.
type Validator interface {
	ValidatePath(path string) error
	ValidateCommand(cmd string, args []string) error
	SanitizePath(path string) (string, error)
}

// PathFilter lets a locator enter only the paths v accepts.
func PathFilter(v Validator) locator.PathFilter {
	return func(path string) bool {
		return v.ValidatePath(path) == nil
	}
}
