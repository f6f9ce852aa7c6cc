package probe

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/fsprobe/internal/locator"
	"github.com/d-kuro/fsprobe/internal/prompts"
	"github.com/d-kuro/fsprobe/internal/stopwatch"
	"github.com/d-kuro/fsprobe/internal/tools"
)

// LocateFileArgs represents the arguments for the LocateFile tool.
type LocateFileArgs struct {
	Name string  `json:"name"`
	Root *string `json:"root,omitempty"`
}

// LocateFileResult is the LocateFile response body.
type LocateFileResult struct {
	Found    bool   `json:"found"`
	Target   string `json:"target"`
	Root     string `json:"root"`
	Path     string `json:"path,omitempty"`
	Modified string `json:"modified,omitempty"`
	Elapsed  string `json:"elapsed"`
}

// CreateLocateFileTool creates the LocateFile tool.
func CreateLocateFileTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[LocateFileArgs]) (*mcp.CallToolResultFor[any], error) {
		logger := requestLogger(ctx, "LocateFile")

		result, err := locateFile(ctxReq, ctx, params.Arguments)
		if err != nil {
			logger.Warn("LocateFile failed", "error", err)
			return tools.ErrorResponse(err.Error()), nil
		}

		logger.Info("LocateFile completed",
			"target", result.Target,
			"root", result.Root,
			"found", result.Found,
			"elapsed", result.Elapsed)
		return tools.JSONResponse(result), nil
	}

	tool := &mcp.Tool{
		Name:        "LocateFile",
		Description: prompts.LocateFileToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

func locateFile(ctxReq context.Context, ctx *tools.Context, args LocateFileArgs) (*LocateFileResult, error) {
	if args.Name == "" {
		return nil, errEmpty("name")
	}

	root := ctx.SearchRoot
	if args.Root != nil && *args.Root != "" {
		root = *args.Root
	}
	root, err := resolvePath(ctx, root)
	if err != nil {
		return nil, err
	}

	q := locator.NewQuery(args.Name)
	sw := stopwatch.Started()
	if err := ctx.Finder.Locate(ctxReq, q, root); err != nil {
		return nil, err
	}
	sw.End()

	return &LocateFileResult{
		Found:    q.Found,
		Target:   q.Target,
		Root:     root,
		Path:     foundPath(q),
		Modified: formatTime(q.Modified),
		Elapsed:  sw.String(),
	}, nil
}

func foundPath(q *locator.Query) string {
	if !q.Found {
		return ""
	}
	return q.Path
}
