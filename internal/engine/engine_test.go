package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/arunmm8335/war-of-the-pixel/internal/board"
	"github.com/arunmm8335/war-of-the-pixel/internal/event"
	"github.com/arunmm8335/war-of-the-pixel/internal/eventlog"
	pebblestore "github.com/arunmm8335/war-of-the-pixel/internal/storage/pebble"
)

func newTestEngine(t *testing.T, pub Publisher) (*Engine, *eventlog.Log) {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeAlways})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	lg, err := eventlog.OpenLog(db, "pixel-events")
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	if err := lg.EnsureGroup("web-backend"); err != nil {
		t.Fatalf("ensure group: %v", err)
	}
	e := New(Options{
		Log:     lg,
		Group:   "web-backend",
		Board:   board.New(100, 100),
		History: 100,
		Pub:     pub,
	})
	return e, lg
}

func TestSubmitPaintRejectsOutOfBounds(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	for _, c := range []event.Event{
		{X: -1, Y: 0, Color: "#FF0000"},
		{X: 0, Y: -1, Color: "#FF0000"},
		{X: 100, Y: 0, Color: "#FF0000"},
		{X: 0, Y: 100, Color: "#FF0000"},
	} {
		if _, err := e.SubmitPaint(context.Background(), c); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("(%d,%d): got %v", c.X, c.Y, err)
		}
	}
	if e.log.LastSeq() != 0 {
		t.Fatalf("rejected paints must not reach the log")
	}
}

func TestSubmitPaintRejectsBadColor(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	for _, color := range []string{"", "red", "#FFF", "#GGGGGG", "FF0000"} {
		if _, err := e.SubmitPaint(context.Background(), event.Event{X: 1, Y: 1, Color: color}); !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("%q: got %v", color, err)
		}
	}
}

func TestSubmitPaintAppendsWithoutFolding(t *testing.T) {
	e, lg := newTestEngine(t, nil)
	seq, err := e.SubmitPaint(context.Background(), event.Event{X: 5, Y: 6, Color: "#ab12cd", Source: "HUMAN"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if seq != 1 {
		t.Fatalf("seq: %d", seq)
	}
	// validation does not mutate the board; only the consumer loop folds
	if got := e.PixelAt(5, 6); got != board.DefaultColor {
		t.Fatalf("board mutated on submit: %s", got)
	}
	items, _ := lg.Read(eventlog.ReadOptions{})
	if len(items) != 1 {
		t.Fatalf("items: %d", len(items))
	}
	ev, err := event.Decode(items[0].Payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Color != "#AB12CD" {
		t.Fatalf("color should be normalized: %s", ev.Color)
	}
	if ev.Timestamp == 0 {
		t.Fatalf("timestamp should be assigned")
	}
}

func appendRaw(t *testing.T, lg *eventlog.Log, ev event.Event) {
	t.Helper()
	payload, err := event.Encode(ev)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := lg.Append(context.Background(), nil, payload); err != nil {
		t.Fatalf("append: %v", err)
	}
}

func TestBootstrapRebuildsProjections(t *testing.T) {
	e, lg := newTestEngine(t, nil)
	appendRaw(t, lg, event.Event{X: 1, Y: 1, Color: "#110000", Source: "HUMAN", Timestamp: 1})
	appendRaw(t, lg, event.Event{X: 2, Y: 2, Color: "#002200", Source: "AI_AGENT:rex", Timestamp: 2})
	appendRaw(t, lg, event.Event{X: 1, Y: 1, Color: "#000033", Source: "HUMAN", Timestamp: 3})

	if err := e.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if got := e.PixelAt(1, 1); got != "#000033" {
		t.Fatalf("last write should win: %s", got)
	}
	if got := e.PixelAt(2, 2); got != "#002200" {
		t.Fatalf("pixel (2,2): %s", got)
	}
	if e.Board().Count() != 2 {
		t.Fatalf("painted cells: %d", e.Board().Count())
	}
	if got := len(e.RecentEvents()); got != 3 {
		t.Fatalf("history: %d", got)
	}
	if e.State() != StateBootstrapping {
		t.Fatalf("state: %v", e.State())
	}
}

func TestBootstrapReplayConverges(t *testing.T) {
	pub := newCapturePub()
	e, lg := newTestEngine(t, pub)
	appendRaw(t, lg, event.Event{X: 4, Y: 4, Color: "#AAAAAA", Timestamp: 1})
	appendRaw(t, lg, event.Event{X: 4, Y: 4, Color: "#BBBBBB", Timestamp: 2})

	if err := e.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	first := e.Snapshot()
	if err := e.Bootstrap(context.Background()); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	second := e.Snapshot()
	if len(first) != len(second) {
		t.Fatalf("replay changed painted set: %d vs %d", len(first), len(second))
	}
	for k, v := range first {
		if second[k] != v {
			t.Fatalf("replay changed %v: %s vs %s", k, v, second[k])
		}
	}
	if pub.boardCount() != 0 {
		t.Fatalf("bootstrap must not publish")
	}
}

func TestBootstrapSkipsUndecodable(t *testing.T) {
	e, lg := newTestEngine(t, nil)
	appendRaw(t, lg, event.Event{X: 1, Y: 1, Color: "#110000", Timestamp: 1})
	if _, err := lg.Append(context.Background(), nil, []byte("not an event")); err != nil {
		t.Fatalf("append garbage: %v", err)
	}
	appendRaw(t, lg, event.Event{X: 2, Y: 2, Color: "#220000", Timestamp: 2})

	if err := e.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	st := e.Stats()
	if st.Processed != 2 {
		t.Fatalf("processed: %d", st.Processed)
	}
	if st.DecodeErrors != 1 {
		t.Fatalf("decode errors: %d", st.DecodeErrors)
	}
}

func TestStats(t *testing.T) {
	e, lg := newTestEngine(t, nil)
	appendRaw(t, lg, event.Event{X: 0, Y: 0, Color: "#123456", Source: event.SourceHuman, Timestamp: 1})
	appendRaw(t, lg, event.Event{X: 1, Y: 1, Color: "#654321", Source: "AI_AGENT:bot", Timestamp: 2})
	if err := e.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	st := e.Stats()
	if st.Group != "web-backend" || st.Width != 100 || st.Height != 100 {
		t.Fatalf("stats: %+v", st)
	}
	if st.PaintedCells != 2 || st.LastSeq != 2 {
		t.Fatalf("stats: %+v", st)
	}
	if st.RecentHuman != 1 || st.RecentAgent != 1 {
		t.Fatalf("move counts: %+v", st)
	}
}
