package event

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// NowMs returns the current time in epoch milliseconds. Tests may
// override it.
var NowMs = func() int64 { return time.Now().UnixMilli() }

// Encode serializes an event as a flat string field map. The message
// field is written only when non-empty.
func Encode(ev Event) ([]byte, error) {
	fields := map[string]string{
		"x":         strconv.Itoa(ev.X),
		"y":         strconv.Itoa(ev.Y),
		"color":     ev.Color,
		"source":    ev.Source,
		"timestamp": strconv.FormatInt(ev.Timestamp, 10),
	}
	if ev.Message != "" {
		fields["message"] = ev.Message
	}
	return json.Marshal(fields)
}

// Decode parses a stored field map back into an event. Decoding is
// lenient: a missing source becomes UNKNOWN, an absent or literal
// "null" message becomes empty, and an unparseable timestamp is
// replaced with the current time. Only x, y, and color are required.
func Decode(data []byte) (Event, error) {
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}

	var ev Event
	x, ok := fields["x"]
	if !ok {
		return Event{}, fmt.Errorf("decode event: missing field x")
	}
	n, err := strconv.Atoi(x)
	if err != nil {
		return Event{}, fmt.Errorf("decode event: field x: %w", err)
	}
	ev.X = n

	y, ok := fields["y"]
	if !ok {
		return Event{}, fmt.Errorf("decode event: missing field y")
	}
	n, err = strconv.Atoi(y)
	if err != nil {
		return Event{}, fmt.Errorf("decode event: field y: %w", err)
	}
	ev.Y = n

	color, ok := fields["color"]
	if !ok || color == "" {
		return Event{}, fmt.Errorf("decode event: missing field color")
	}
	ev.Color = color

	if src, ok := fields["source"]; ok && src != "" {
		ev.Source = src
	} else {
		ev.Source = SourceUnknown
	}

	if msg, ok := fields["message"]; ok && msg != "null" {
		ev.Message = msg
	}

	if ts, ok := fields["timestamp"]; ok {
		if ms, err := strconv.ParseInt(ts, 10, 64); err == nil {
			ev.Timestamp = ms
		} else {
			ev.Timestamp = NowMs()
		}
	} else {
		ev.Timestamp = NowMs()
	}

	return ev, nil
}
