// Package board holds the in-memory projections folded from the event
// log: the pixel grid and a bounded ring of recent events. Both are
// derived state and are rebuilt from the log on startup.
package board
