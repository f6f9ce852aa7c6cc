package probe

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/fsprobe/internal/prompts"
	"github.com/d-kuro/fsprobe/internal/tools"
)

// MakeDirectoryArgs represents the arguments for the MakeDirectory tool.
type MakeDirectoryArgs struct {
	Path string `json:"path"`
}

// CreateMakeDirectoryTool creates the MakeDirectory tool.
func CreateMakeDirectoryTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[MakeDirectoryArgs]) (*mcp.CallToolResultFor[any], error) {
		logger := requestLogger(ctx, "MakeDirectory")

		dir, err := makeDirectory(ctx, params.Arguments)
		if err != nil {
			logger.Warn("MakeDirectory failed", "error", err)
			return tools.FileOperationError("MakeDirectory", err), nil
		}

		logger.Info("Directory ready", "path", dir)
		return tools.SuccessResponse("Directory ready: " + dir), nil
	}

	tool := &mcp.Tool{
		Name:        "MakeDirectory",
		Description: prompts.MakeDirectoryToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

func makeDirectory(ctx *tools.Context, args MakeDirectoryArgs) (string, error) {
	dir, err := resolvePath(ctx, args.Path)
	if err != nil {
		return "", err
	}
	if err := ctx.Prober.MkdirAll(dir); err != nil {
		return "", err
	}
	return dir, nil
}
