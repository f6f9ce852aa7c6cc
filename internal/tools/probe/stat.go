package probe

import (
	"context"
	"io/fs"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/prompts"
	"github.com/d-kuro/fsprobe/internal/tools"
)

// StatPathArgs represents the arguments for the StatPath tool.
type StatPathArgs struct {
	Path string `json:"path"`
}

// StatPathResult is the StatPath response body.
type StatPathResult struct {
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	IsFile   bool   `json:"is_file"`
	IsDir    bool   `json:"is_dir"`
	Size     int64  `json:"size"`
	Modified string `json:"modified,omitempty"`
}

// CreateStatPathTool creates the StatPath tool.
func CreateStatPathTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[StatPathArgs]) (*mcp.CallToolResultFor[any], error) {
		result, err := statPath(ctx, params.Arguments)
		if err != nil {
			requestLogger(ctx, "StatPath").Warn("StatPath failed", "error", err)
			return tools.InvalidPathError(err), nil
		}
		return tools.JSONResponse(result), nil
	}

	tool := &mcp.Tool{
		Name:        "StatPath",
		Description: prompts.StatPathToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

func statPath(ctx *tools.Context, args StatPathArgs) (*StatPathResult, error) {
	path, err := resolvePath(ctx, args.Path)
	if err != nil {
		return nil, err
	}

	result := &StatPathResult{Path: path}
	info, err := ctx.Prober.FileSystem().Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, nil
		}
		return nil, errors.Wrap(err, "stat %s", path)
	}

	result.Exists = true
	result.IsFile = info.Mode().IsRegular()
	result.IsDir = info.IsDir()
	result.Size = info.Size()
	result.Modified = formatTime(info.ModTime())
	return result, nil
}
