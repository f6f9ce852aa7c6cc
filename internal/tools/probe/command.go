package probe

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/prompts"
	"github.com/d-kuro/fsprobe/internal/shell"
	"github.com/d-kuro/fsprobe/internal/tools"
)

// RunCommandArgs represents the arguments for the RunCommand tool.
type RunCommandArgs struct {
	Command   string `json:"command"`
	TimeoutMS *int   `json:"timeout_ms,omitempty"`
}

// CreateRunCommandTool creates the RunCommand tool.
func CreateRunCommandTool(ctx *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[RunCommandArgs]) (*mcp.CallToolResultFor[any], error) {
		logger := requestLogger(ctx, "RunCommand")

		result, err := runCommand(ctxReq, ctx, params.Arguments)
		if err != nil {
			logger.Warn("RunCommand failed", "error", err)
			switch {
			case errors.Is(err, errors.ErrSecurity):
				return tools.CommandValidationError(err), nil
			case errors.Is(err, errMaxTimeout):
				return tools.TimeoutError(ctx.MaxCommandTimeout.String()), nil
			}
			return tools.ErrorResponse(err.Error()), nil
		}

		logger.Info("RunCommand completed", "exit_code", result.ExitCode, "duration", result.Elapsed)
		return tools.JSONResponse(result), nil
	}

	tool := &mcp.Tool{
		Name:        "RunCommand",
		Description: prompts.RunCommandToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

var errMaxTimeout = errors.Validation("requested timeout exceeds maximum")

func runCommand(ctxReq context.Context, ctx *tools.Context, args RunCommandArgs) (*shell.Result, error) {
	if args.Command == "" {
		return nil, errEmpty("command")
	}
	if err := ctx.Validator.ValidateCommand(args.Command, nil); err != nil {
		return nil, err
	}

	timeout := ctx.Executor.Timeout()
	if args.TimeoutMS != nil && *args.TimeoutMS > 0 {
		timeout = time.Duration(*args.TimeoutMS) * time.Millisecond
		if ctx.MaxCommandTimeout > 0 && timeout > ctx.MaxCommandTimeout {
			return nil, errMaxTimeout
		}
	}

	return ctx.Executor.ReadOutputTimeout(ctxReq, args.Command, timeout)
}

func errEmpty(field string) error {
	return errors.Validation(field + " cannot be empty")
}
