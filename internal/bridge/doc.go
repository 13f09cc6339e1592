// Package bridge exposes the canvas to AI agents over MCP. Tools read
// from the bridge engine's projections and paint through the same
// validated append path as the HTTP API, so agents and humans share
// one source of truth.
package bridge
