package tools

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeTool(name, desc string) *ServerTool {
	return &ServerTool{
		Tool:         &mcp.Tool{Name: name, Description: desc},
		RegisterFunc: func(*mcp.Server) {},
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(fakeTool("StatPath", "stat")))
	require.NoError(t, r.Register(fakeTool("LocateFile", "locate")))

	assert.Error(t, r.Register(fakeTool("LocateFile", "again")), "duplicate names are rejected")
	assert.Error(t, r.Register(fakeTool("", "nameless")))
	assert.Error(t, r.Register(nil))

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, []string{"LocateFile", "StatPath"}, r.List())

	tool, ok := r.Get("LocateFile")
	require.True(t, ok)
	assert.Equal(t, "locate", tool.Tool.Description)

	_, ok = r.Get("Missing")
	assert.False(t, ok)

	assert.NoError(t, r.Validate())
}

func TestRegistryValidate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(fakeTool("Empty", "")))
	assert.Error(t, r.Validate())

	r = NewRegistry()
	broken := fakeTool("Broken", "desc")
	broken.RegisterFunc = nil
	require.NoError(t, r.Register(broken))
	assert.Error(t, r.Validate())
}

func TestResponses(t *testing.T) {
	res := ErrorResponsef("bad %s", "thing")
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: bad thing", TextOf(res))

	res = JSONResponse(map[string]int{"a": 1})
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"a":1}`, TextOf(res))

	res = JSONResponse(func() {})
	assert.True(t, res.IsError)

	assert.Equal(t, "Error: Invalid path: boom", TextOf(InvalidPathError(errors.New("boom"))))
	assert.Equal(t, "Error: path cannot be empty", TextOf(EmptyFieldError("path")))
}
