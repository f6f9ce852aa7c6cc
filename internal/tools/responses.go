package tools

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrorResponse creates a standardized error response for MCP tools.
func ErrorResponse(message string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + message}},
		IsError: true,
	}
}

// ErrorResponsef creates a standardized error response with formatted message.
func ErrorResponsef(format string, args ...any) *mcp.CallToolResultFor[any] {
	return ErrorResponse(fmt.Sprintf(format, args...))
}

// SuccessResponse creates a standardized success response with text content.
func SuccessResponse(message string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: false,
	}
}

// JSONResponse creates a response with JSON content.
func JSONResponse(data any) *mcp.CallToolResultFor[any] {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ErrorResponsef("failed to marshal JSON: %v", err)
	}

	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
		IsError: false,
	}
}

// InvalidPathError creates an error response for invalid file paths.
func InvalidPathError(err error) *mcp.CallToolResultFor[any] {
	return ErrorResponsef("Invalid path: %v", err)
}

// CommandValidationError creates an error response for command validation failures.
func CommandValidationError(err error) *mcp.CallToolResultFor[any] {
	return ErrorResponsef("Command validation failed: %v", err)
}

// FileOperationError creates an error response for file operation failures.
func FileOperationError(operation string, err error) *mcp.CallToolResultFor[any] {
	return ErrorResponsef("%s failed: %v", operation, err)
}

// EmptyFieldError creates an error response for empty required fields.
func EmptyFieldError(fieldName string) *mcp.CallToolResultFor[any] {
	return ErrorResponsef("%s cannot be empty", fieldName)
}

// TimeoutError creates an error response for timeout violations.
func TimeoutError(maxTimeout string) *mcp.CallToolResultFor[any] {
	return ErrorResponsef("Maximum timeout is %s", maxTimeout)
}

// TextOf returns the concatenated text content of a result.
func TextOf(result *mcp.CallToolResultFor[any]) string {
	var text string
	for _, c := range result.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			text += tc.Text
		}
	}
	return text
}
