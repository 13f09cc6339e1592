package event

import (
	"encoding/json"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := Event{X: 12, Y: 34, Color: "#FF0000", Source: "AI_AGENT:crimson", Message: "mine now", Timestamp: 1700000000000}
	data, err := Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestEncodeOmitsEmptyMessage(t *testing.T) {
	data, err := Encode(Event{X: 1, Y: 2, Color: "#00FF00", Source: "HUMAN", Timestamp: 5})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := fields["message"]; ok {
		t.Fatalf("message field should be absent")
	}
}

func TestDecodeDefaults(t *testing.T) {
	data := []byte(`{"x":"3","y":"4","color":"#ABCDEF"}`)
	ev, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Source != SourceUnknown {
		t.Fatalf("source default: %s", ev.Source)
	}
	if ev.Message != "" {
		t.Fatalf("message default: %q", ev.Message)
	}
	if ev.Timestamp == 0 {
		t.Fatalf("timestamp should default to now")
	}
}

func TestDecodeNullMessageDropped(t *testing.T) {
	data := []byte(`{"x":"3","y":"4","color":"#ABCDEF","message":"null","timestamp":"9"}`)
	ev, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Message != "" {
		t.Fatalf("literal null message should be dropped, got %q", ev.Message)
	}
}

func TestDecodeBadTimestampUsesNow(t *testing.T) {
	prev := NowMs
	NowMs = func() int64 { return 42 }
	defer func() { NowMs = prev }()

	data := []byte(`{"x":"3","y":"4","color":"#ABCDEF","timestamp":"soon"}`)
	ev, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Timestamp != 42 {
		t.Fatalf("timestamp fallback: %d", ev.Timestamp)
	}
}

func TestDecodeMissingRequired(t *testing.T) {
	for _, data := range []string{
		`{"y":"4","color":"#ABCDEF"}`,
		`{"x":"3","color":"#ABCDEF"}`,
		`{"x":"3","y":"4"}`,
		`{"x":"three","y":"4","color":"#ABCDEF"}`,
		`not json`,
	} {
		if _, err := Decode([]byte(data)); err == nil {
			t.Fatalf("expected error for %s", data)
		}
	}
}
