package probe

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/fsprobe/internal/pathutil"
	"github.com/d-kuro/fsprobe/internal/prompts"
	"github.com/d-kuro/fsprobe/internal/tools"
)

// PathInfoArgs represents the arguments for the PathInfo tool.
type PathInfoArgs struct {
	Path        string  `json:"path"`
	CombineWith *string `json:"combine_with,omitempty"`
}

// PathInfoResult is the PathInfo response body.
type PathInfoResult struct {
	Formatted string `json:"formatted"`
	FileName  string `json:"file_name"`
	Extension string `json:"extension"`
	Stem      string `json:"stem,omitempty"`
	DirName   string `json:"dir_name"`
	Combined  string `json:"combined,omitempty"`
}

// CreatePathInfoTool creates the PathInfo tool.
func CreatePathInfoTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[PathInfoArgs]) (*mcp.CallToolResultFor[any], error) {
		if params.Arguments.Path == "" {
			return tools.EmptyFieldError("path"), nil
		}
		return tools.JSONResponse(pathInfo(params.Arguments)), nil
	}

	tool := &mcp.Tool{
		Name:        "PathInfo",
		Description: prompts.PathInfoToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

func pathInfo(args PathInfoArgs) *PathInfoResult {
	name := pathutil.FileName(args.Path)
	result := &PathInfoResult{
		Formatted: pathutil.Format(args.Path),
		FileName:  name,
		Extension: pathutil.Extension(args.Path),
		DirName:   pathutil.DirName(args.Path),
	}
	// names without an extension have no stem
	if stem, err := pathutil.Stem(name); err == nil {
		result.Stem = stem
	}
	if args.CombineWith != nil {
		result.Combined = pathutil.Combine(args.Path, *args.CombineWith)
	}
	return result
}
