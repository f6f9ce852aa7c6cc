// Package security provides path and command validation for requests that
// arrive over MCP.
package security

import (
	"path/filepath"
	"strings"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/strutil"
)

// Validator defines the security validation interface.
type Validator interface {
	ValidatePath(path string) error
	ValidateCommand(cmd string, args []string) error
	SanitizePath(path string) (string, error)
}

// DefaultValidator provides default security validation implementation.
type DefaultValidator struct {
	allowedPaths    []string
	blockedPaths    []string
	allowedCommands []string
	blockedCommands []string
}

// NewDefaultValidator creates a new default validator with secure defaults.
func NewDefaultValidator() *DefaultValidator {
	return &DefaultValidator{
		allowedPaths: []string{},
		blockedPaths: []string{
			"/sys",
			"/proc",
			"/dev",
		},
		allowedCommands: []string{},
		blockedCommands: []string{
			"sudo",
			"su",
			"chmod",
			"chown",
			"rm",
			"rmdir",
			"dd",
			"mkfs",
			"fdisk",
			"mount",
			"umount",
		},
	}
}

// WithAllowedPaths sets the allowed paths for file operations.
func (v *DefaultValidator) WithAllowedPaths(paths []string) *DefaultValidator {
	v.allowedPaths = make([]string, len(paths))
	copy(v.allowedPaths, paths)
	return v
}

// WithBlockedPaths adds blocked paths to the default list.
func (v *DefaultValidator) WithBlockedPaths(paths []string) *DefaultValidator {
	v.blockedPaths = append(v.blockedPaths, paths...)
	return v
}

// WithAllowedCommands sets the allowed commands for execution.
func (v *DefaultValidator) WithAllowedCommands(commands []string) *DefaultValidator {
	v.allowedCommands = make([]string, len(commands))
	copy(v.allowedCommands, commands)
	return v
}

// WithBlockedCommands adds blocked commands to the default list.
func (v *DefaultValidator) WithBlockedCommands(commands []string) *DefaultValidator {
	v.blockedCommands = append(v.blockedCommands, commands...)
	return v
}

// ValidatePath validates and checks if a file path is allowed.
func (v *DefaultValidator) ValidatePath(path string) error {
	if path == "" {
		return errors.Validation("path cannot be empty")
	}
	if !filepath.IsAbs(path) {
		return errors.Security("path must be absolute")
	}

	cleanPath := filepath.Clean(path)
	resolvedPath := resolve(cleanPath)

	for _, blocked := range v.blockedPaths {
		if within(resolvedPath, blocked) || within(cleanPath, blocked) {
			return errors.SecurityWithDetails(
				"path is blocked",
				"path accesses restricted system directory",
			)
		}
	}

	// a link inside an allowed root may point anywhere, so only the
	// resolved location counts here
	if len(v.allowedPaths) > 0 {
		allowed := false
		for _, allowedPath := range v.allowedPaths {
			if within(resolvedPath, resolve(filepath.Clean(allowedPath))) {
				allowed = true
				break
			}
		}
		if !allowed {
			return errors.SecurityWithDetails(
				"path not allowed",
				"path is not in allowed directories",
			)
		}
	}

	return nil
}

// resolve evaluates symlinks in the longest existing prefix of path and
// appends the rest, so a path that does not exist yet is judged by where its
// parent really is.
func resolve(path string) string {
	var rest []string
	p := path
	for {
		if real, err := filepath.EvalSymlinks(p); err == nil {
			for i := len(rest) - 1; i >= 0; i-- {
				real = filepath.Join(real, rest[i])
			}
			return real
		}
		parent := filepath.Dir(p)
		if parent == p {
			return path
		}
		rest = append(rest, filepath.Base(p))
		p = parent
	}
}

// within reports whether path is dir or lies beneath it.
func within(path, dir string) bool {
	dir = filepath.Clean(dir)
	if path == dir {
		return true
	}
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return strutil.BeginsWith(path, dir)
}

// ValidateCommand validates if a command is allowed to be executed.
func (v *DefaultValidator) ValidateCommand(cmd string, args []string) error {
	if cmd == "" {
		return errors.Validation("command cannot be empty")
	}

	parts := strutil.Split(cmd, ' ', '\t', '\n')
	if len(parts) == 0 {
		return errors.Validation("invalid command format")
	}

	// "rm" and 'rm' run rm
	baseName := filepath.Base(strutil.StripQuotes(parts[0]))

	for _, blocked := range v.blockedCommands {
		if matched, _ := filepath.Match(blocked, baseName); matched {
			return errors.SecurityWithDetails(
				"command is blocked",
				"command is in the blocked list for security",
			)
		}
	}

	if len(v.allowedCommands) > 0 {
		allowed := false
		for _, allowedCmd := range v.allowedCommands {
			if matched, _ := filepath.Match(allowedCmd, baseName); matched {
				allowed = true
				break
			}
		}
		if !allowed {
			return errors.SecurityWithDetails(
				"command not allowed",
				"command is not in the allowed list",
			)
		}
	}

	return nil
}

// SanitizePath cleans and validates a file path.
func (v *DefaultValidator) SanitizePath(path string) (string, error) {
	if err := v.ValidatePath(path); err != nil {
		return "", err
	}

	cleanPath := filepath.Clean(path)
	return cleanPath, nil
}
