package eventlog

import (
	"context"
	"testing"

	pebblestore "github.com/arunmm8335/war-of-the-pixel/internal/storage/pebble"
)

func seedLog(t *testing.T, n int) (*Log, []uint64) {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeAlways})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	l, err := OpenLog(db, "pixel-events")
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	seqs := make([]uint64, n)
	for i := 0; i < n; i++ {
		seq, err := l.Append(context.Background(), nil, []byte{byte(i)})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
		seqs[i] = seq
	}
	return l, seqs
}

func TestReadForward(t *testing.T) {
	l, seqs := seedLog(t, 5)
	items, next := l.Read(ReadOptions{Limit: 3})
	if len(items) != 3 {
		t.Fatalf("want 3 items, got %d", len(items))
	}
	if items[0].Seq != seqs[0] || items[2].Seq != seqs[2] {
		t.Fatalf("unexpected seqs")
	}
	if next.Seq() != seqs[3] {
		t.Fatalf("resume token = %d, want %d", next.Seq(), seqs[3])
	}
}

func TestReadFromToken(t *testing.T) {
	l, seqs := seedLog(t, 4)
	items, _ := l.Read(ReadOptions{Start: TokenFromSeq(seqs[2]), Limit: 2})
	if len(items) == 0 || items[0].Seq != seqs[2] {
		t.Fatalf("seek failed")
	}
}

func TestReadSkipsCorruptEntry(t *testing.T) {
	db, err := pebblestore.Open(pebblestore.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeAlways})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	l, _ := OpenLog(db, "pixel-events")
	ctx := context.Background()
	if _, err := l.Append(ctx, nil, []byte("good")); err != nil {
		t.Fatalf("append: %v", err)
	}
	badSeq, err := l.Append(ctx, nil, []byte("soon-bad"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := l.Append(ctx, nil, []byte("also-good")); err != nil {
		t.Fatalf("append: %v", err)
	}
	// Overwrite the middle entry with garbage that fails the CRC check.
	if err := db.Set(KeyEntry("pixel-events", badSeq), []byte{0xde, 0xad, 0xbe, 0xef, 0x00}); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	items, _ := l.Read(ReadOptions{})
	if len(items) != 2 {
		t.Fatalf("want 2 decodable items, got %d", len(items))
	}
	for _, it := range items {
		if it.Seq == badSeq {
			t.Fatalf("corrupt entry surfaced")
		}
	}
}
