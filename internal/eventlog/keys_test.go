package eventlog

import (
	"bytes"
	"testing"
)

func TestEntryKeysOrderBySeq(t *testing.T) {
	a := KeyEntry("pixel-events", 10)
	b := KeyEntry("pixel-events", 11)
	if bytes.Compare(a, b) >= 0 {
		t.Fatalf("expected seq 10 < seq 11")
	}
}

func TestCursorKeyLayout(t *testing.T) {
	k := KeyCursor("pixel-events", "web-backend")
	if string(k) != "cursor/pixel-events/web-backend" {
		t.Fatalf("unexpected cursor layout: %q", string(k))
	}
}

func TestGroupKeyLayout(t *testing.T) {
	k := KeyGroup("pixel-events", "agent-bridge")
	if string(k) != "group/pixel-events/agent-bridge" {
		t.Fatalf("unexpected group layout: %q", string(k))
	}
}
