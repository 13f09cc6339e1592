package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/arunmm8335/war-of-the-pixel/internal/engine"
)

// Bridge owns the MCP server bound to an engine.
type Bridge struct {
	eng *engine.Engine
	srv *mcp.Server
}

// New builds the MCP server and registers the canvas tools.
func New(eng *engine.Engine) *Bridge {
	b := &Bridge{
		eng: eng,
		srv: mcp.NewServer(&mcp.Implementation{Name: "pixelwar", Version: "1.0.0"}, nil),
	}
	b.registerPaintTool()
	b.registerBoardTool()
	b.registerPixelTool()
	b.registerRecentTool()
	b.registerStatsTool()
	return b
}

// Server returns the underlying MCP server, mainly for tests.
func (b *Bridge) Server() *mcp.Server { return b.srv }

// Handler serves the MCP server over streamable HTTP.
func (b *Bridge) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return b.srv }, nil)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// registerTool wires a typed endpoint as an MCP tool. Tool failures go
// back through result.SetError rather than a protocol error.
func registerTool(srv *mcp.Server, tool *mcp.Tool, endpoint func(ctx context.Context, args json.RawMessage) (any, error)) {
	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := endpoint(ctx, req.Params.Arguments)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(err)
			return &res, nil
		}
		data, err := json.Marshal(resp)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(fmt.Errorf("marshal: %w", err))
			return &res, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	})
}
