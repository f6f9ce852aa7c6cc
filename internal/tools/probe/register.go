package probe

import (
	"github.com/d-kuro/fsprobe/internal/tools"
)

// CreateProbeTools creates the filesystem and path tools.
func CreateProbeTools(ctx *tools.Context) []*tools.ServerTool {
	return []*tools.ServerTool{
		CreateLocateFileTool(ctx),
		CreateStatPathTool(ctx),
		CreateListDirectoryTool(ctx),
		CreatePathInfoTool(ctx),
		CreateMakeDirectoryTool(ctx),
	}
}

// CreateCommandTools creates the command execution tools.
func CreateCommandTools(ctx *tools.Context) []*tools.ServerTool {
	return []*tools.ServerTool{
		CreateRunCommandTool(ctx),
	}
}
