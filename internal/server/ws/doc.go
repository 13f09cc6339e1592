// Package ws fans live events out to WebSocket clients. The hub keeps
// a set of connections and pushes board and chat envelopes to each;
// clients that stop draining their send buffer are dropped rather than
// allowed to stall the engines.
package ws
