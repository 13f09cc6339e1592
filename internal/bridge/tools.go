package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/arunmm8335/war-of-the-pixel/internal/event"
)

// --- paint_pixel ---

type paintArgs struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Color   string `json:"color"`
	Agent   string `json:"agent"`
	Message string `json:"message"`
}

func (b *Bridge) registerPaintTool() {
	tool := &mcp.Tool{
		Name:        "paint_pixel",
		Description: "Paint one pixel on the shared canvas. Color is #RRGGBB hex. An optional message is broadcast as a taunt.",
		InputSchema: inputSchema(map[string]any{
			"x":       map[string]any{"type": "integer", "description": "Column, 0-based"},
			"y":       map[string]any{"type": "integer", "description": "Row, 0-based"},
			"color":   map[string]any{"type": "string", "description": "Hex color like #FF0000"},
			"agent":   map[string]any{"type": "string", "description": "Agent name, shown as the event source"},
			"message": map[string]any{"type": "string", "description": "Optional taunt broadcast to spectators"},
		}, []string{"x", "y", "color"}),
	}
	registerTool(b.srv, tool, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args paintArgs
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		source := event.SourceAIAgent
		if args.Agent != "" {
			source = event.SourceAIAgent + ":" + args.Agent
		}
		seq, err := b.eng.SubmitPaint(ctx, event.Event{
			X:       args.X,
			Y:       args.Y,
			Color:   args.Color,
			Source:  source,
			Message: args.Message,
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"status": "ok", "seq": seq}, nil
	})
}

// --- get_board ---

func (b *Bridge) registerBoardTool() {
	tool := &mcp.Tool{
		Name:        "get_board",
		Description: "Read the whole canvas: dimensions plus a map of painted cells keyed by \"x,y\". Unlisted cells are white.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}
	registerTool(b.srv, tool, func(context.Context, json.RawMessage) (any, error) {
		bd := b.eng.Board()
		pixels := make(map[string]string)
		for c, color := range bd.Pixels() {
			pixels[fmt.Sprintf("%d,%d", c.X, c.Y)] = color
		}
		return map[string]any{
			"width":  bd.Width(),
			"height": bd.Height(),
			"pixels": pixels,
			"count":  len(pixels),
		}, nil
	})
}

// --- get_pixel ---

type pixelArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (b *Bridge) registerPixelTool() {
	tool := &mcp.Tool{
		Name:        "get_pixel",
		Description: "Read the color of one cell.",
		InputSchema: inputSchema(map[string]any{
			"x": map[string]any{"type": "integer"},
			"y": map[string]any{"type": "integer"},
		}, []string{"x", "y"}),
	}
	registerTool(b.srv, tool, func(_ context.Context, raw json.RawMessage) (any, error) {
		var args pixelArgs
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		if !b.eng.Board().InBounds(args.X, args.Y) {
			return nil, fmt.Errorf("coordinates out of bounds: (%d, %d)", args.X, args.Y)
		}
		return map[string]any{
			"x":     args.X,
			"y":     args.Y,
			"color": b.eng.PixelAt(args.X, args.Y),
		}, nil
	})
}

// --- get_recent_events ---

type recentArgs struct {
	Limit int `json:"limit"`
}

func (b *Bridge) registerRecentTool() {
	tool := &mcp.Tool{
		Name:        "get_recent_events",
		Description: "List the most recent paint events, oldest first. Limit caps the count; zero returns everything retained.",
		InputSchema: inputSchema(map[string]any{
			"limit": map[string]any{"type": "integer", "description": "Max events to return"},
		}, nil),
	}
	registerTool(b.srv, tool, func(_ context.Context, raw json.RawMessage) (any, error) {
		var args recentArgs
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}
		}
		events := b.eng.RecentEvents()
		if args.Limit > 0 && len(events) > args.Limit {
			events = events[len(events)-args.Limit:]
		}
		return map[string]any{"events": events}, nil
	})
}

// --- get_stats ---

func (b *Bridge) registerStatsTool() {
	tool := &mcp.Tool{
		Name:        "get_stats",
		Description: "Report canvas dimensions, painted cell count, and consumer progress.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}
	registerTool(b.srv, tool, func(context.Context, json.RawMessage) (any, error) {
		return b.eng.Stats(), nil
	})
}
