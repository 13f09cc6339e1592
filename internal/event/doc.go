// Package event defines the paint event model and its wire codec.
//
// Events are stored in the log as a flat string field map encoded as
// JSON. Required fields are x, y, and color; source, message, and
// timestamp are optional and decoded leniently so older or foreign
// producers stay readable.
package event
