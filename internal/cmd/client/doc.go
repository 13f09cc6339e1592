// Package client contains Cobra CLI commands that talk to a running
// pixelwar server over its HTTP API.
package client
