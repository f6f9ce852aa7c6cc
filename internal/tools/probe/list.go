package probe

import (
	"context"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/fsprobe/internal/collections"
	"github.com/d-kuro/fsprobe/internal/fsutil"
	"github.com/d-kuro/fsprobe/internal/prompts"
	"github.com/d-kuro/fsprobe/internal/tools"
)

// ListDirectoryArgs represents the arguments for the ListDirectory tool.
type ListDirectoryArgs struct {
	Path   string   `json:"path"`
	Kind   string   `json:"kind,omitempty"`
	Ignore []string `json:"ignore,omitempty"`
}

// ListDirectoryResult is the ListDirectory response body.
type ListDirectoryResult struct {
	Path    string         `json:"path"`
	Entries []fsutil.Entry `json:"entries"`
}

// CreateListDirectoryTool creates the ListDirectory tool.
func CreateListDirectoryTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[ListDirectoryArgs]) (*mcp.CallToolResultFor[any], error) {
		result, err := listDirectory(ctx, params.Arguments)
		if err != nil {
			requestLogger(ctx, "ListDirectory").Warn("ListDirectory failed", "error", err)
			return tools.FileOperationError("ListDirectory", err), nil
		}
		return tools.JSONResponse(result), nil
	}

	tool := &mcp.Tool{
		Name:        "ListDirectory",
		Description: prompts.ListDirectoryToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

func listDirectory(ctx *tools.Context, args ListDirectoryArgs) (*ListDirectoryResult, error) {
	kind, err := fsutil.ParseKind(args.Kind)
	if err != nil {
		return nil, err
	}

	dir, err := resolvePath(ctx, args.Path)
	if err != nil {
		return nil, err
	}

	entries, err := ctx.Prober.List(dir, kind)
	if err != nil {
		return nil, err
	}

	kept := collections.Filter(entries, func(e fsutil.Entry) bool {
		return !shouldIgnoreFile(e.Name, args.Ignore)
	})

	return &ListDirectoryResult{Path: dir, Entries: kept}, nil
}

// shouldIgnoreFile checks if a filename matches any of the ignore patterns.
func shouldIgnoreFile(filename string, ignorePatterns []string) bool {
	for _, pattern := range ignorePatterns {
		if matched, err := filepath.Match(pattern, filename); err == nil && matched {
			return true
		}
	}
	return false
}
