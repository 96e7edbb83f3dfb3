// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes Postman generation as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apibridge/swag2postman"
)

const serverInstructions = `swag2postman MCP server — generates Postman environments and collections from OpenAPI specifications.

The generate tool accepts a spec by file path or inline content (JSON or YAML). With output_dir it writes environment_<host>.json files and collection_generated.json to disk; without it the generated documents are returned inline. Set seed for reproducible placeholder values and keep_missing_refs to tolerate dangling component references.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "swag2postman", Version: swag2postman.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate Postman documents from an OpenAPI Specification: one environment per server entry and a collection with one request per (path, method) operation, with placeholder values for parameters and JSON bodies. Provide the spec via file or content. Use output_dir to write files to disk, or omit it to receive the documents inline.",
	}, handleGenerate)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
