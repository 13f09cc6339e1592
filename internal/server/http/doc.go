// Package httpserver exposes the REST and SSE surface of the canvas.
// Painting goes through POST /api/paint, reads hit the web engine's
// projections, and /api/events/stream pushes live events with an
// optional CEL filter. The WebSocket hub and the MCP bridge are
// mounted on the same router.
package httpserver
