// Package server implements the fsprobe MCP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/fsprobe/internal/collections"
	"github.com/d-kuro/fsprobe/internal/config"
	"github.com/d-kuro/fsprobe/internal/fsutil"
	"github.com/d-kuro/fsprobe/internal/locator"
	"github.com/d-kuro/fsprobe/internal/logging"
	"github.com/d-kuro/fsprobe/internal/security"
	"github.com/d-kuro/fsprobe/internal/shell"
	"github.com/d-kuro/fsprobe/internal/tools"
	"github.com/d-kuro/fsprobe/internal/tools/probe"
	"github.com/d-kuro/fsprobe/pkg/version"
)

// MaxCommandTimeout caps the timeout a RunCommand caller may ask for.
const MaxCommandTimeout = 10 * time.Minute

// loggerAdapter wraps logging.Logger to implement tools.Logger interface.
// This avoids circular dependency between logging and tools packages.
type loggerAdapter struct {
	*logging.Logger
}

// WithTool implements tools.Logger interface.
func (a *loggerAdapter) WithTool(toolName string) tools.Logger {
	return &loggerAdapter{Logger: a.Logger.WithTool(toolName)}
}

// WithSession implements tools.Logger interface.
func (a *loggerAdapter) WithSession(sessionID string) tools.Logger {
	return &loggerAdapter{Logger: a.Logger.WithSession(sessionID)}
}

// Server represents the fsprobe MCP server.
type Server struct {
	mcpServer *mcp.Server
	registry  *tools.Registry
	logger    *logging.Logger
	validator security.Validator
	finder    *locator.CachedLocator
	config    *config.Config
}

// Options configures the server instance.
type Options struct {
	Logger    *logging.Logger
	Validator security.Validator

	// Config defaults to config.DefaultConfig.
	Config *config.Config
}

// New creates a new fsprobe MCP server with the given options.
func New(opts *Options) (*Server, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	cfg := opts.Config

	if opts.Logger == nil {
		opts.Logger = cfg.Logger(nil)
	}

	if opts.Validator == nil {
		opts.Validator = security.NewDefaultValidator().
			WithAllowedPaths(cfg.Security.AllowedPaths).
			WithBlockedPaths(cfg.Security.BlockedPaths).
			WithBlockedCommands(cfg.Security.BlockedCommands)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    version.MCPName,
		Version: version.GetVersion().Version,
	}, nil)

	server := &Server{
		mcpServer: mcpServer,
		registry:  tools.NewRegistry(),
		logger:    opts.Logger,
		validator: opts.Validator,
		config:    cfg,
	}

	if err := server.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return server, nil
}

// Start validates the registry and logs the server's readiness.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting fsprobe MCP server",
		slog.String("version", version.GetVersion().Version),
		slog.Int("tools", s.registry.Count()),
	)

	if err := s.registry.Validate(); err != nil {
		return fmt.Errorf("tool registry validation failed: %w", err)
	}

	return nil
}

// Stop stops the MCP server gracefully, dropping cached locations.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping fsprobe MCP server", slog.Int("cached_locations", s.finder.Len()))
	s.finder.Flush()

	select {
	case <-ctx.Done():
		s.logger.Warn("Server stop timed out")
		return ctx.Err()
	default:
		s.logger.Info("Server stopped successfully")
		return nil
	}
}

// GetRegistry returns the tool registry.
func (s *Server) GetRegistry() *tools.Registry {
	return s.registry
}

// registerTools builds the tool dependencies from the configuration and
// registers every fsprobe tool with the server.
func (s *Server) registerTools() error {
	s.logger.Debug("Registering tools with MCP server")

	fsys := fsutil.NewOSFileSystem()
	s.finder = locator.NewCached(
		locator.New(fsys, s.logger.WithComponent("locator")).WithPathFilter(tools.PathFilter(s.validator)),
		s.config.Cache.TTL,
		s.config.Cache.Cleanup,
	)

	toolCtx := &tools.Context{
		Logger:            &loggerAdapter{Logger: s.logger},
		Validator:         s.validator,
		Finder:            s.finder,
		Prober:            fsutil.NewProber(fsys, s.logger.WithComponent("fsutil")),
		Executor:          shell.NewExecutor(s.config.Exec.Timeout),
		SearchRoot:        s.config.SearchRoot,
		MaxCommandTimeout: MaxCommandTimeout,
	}

	allTools := collections.Concat(
		probe.CreateProbeTools(toolCtx),
		probe.CreateCommandTools(toolCtx),
	)

	for _, tool := range allTools {
		if err := s.registry.Register(tool); err != nil {
			return err
		}
		s.logger.Debug("Registered tool", "name", tool.Tool.Name)
	}
	s.registry.Install(s.mcpServer)

	s.logger.Info("Successfully registered tools",
		slog.Int("count", s.registry.Count()),
		slog.Any("tools", s.registry.List()),
	)

	return nil
}

// Serve runs the MCP server with the specified transport.
// It connects the MCP server to the transport and waits for either
// the session to complete or the context to be cancelled.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	s.logger.Info("Starting MCP server transport",
		slog.String("transport", fmt.Sprintf("%T", transport)),
	)

	session, err := s.mcpServer.Connect(ctx, transport)
	if err != nil {
		return fmt.Errorf("failed to connect MCP server: %w", err)
	}

	sessionDone := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("MCP session goroutine panicked",
					slog.Any("panic", r))
				sessionDone <- fmt.Errorf("session panicked: %v", r)
			}
		}()
		sessionDone <- session.Wait()
	}()

	select {
	case err := <-sessionDone:
		s.logger.Info("MCP session finished")
		return err
	case <-ctx.Done():
		s.logger.Info("MCP server shutting down due to context cancellation")
		return ctx.Err()
	}
}
