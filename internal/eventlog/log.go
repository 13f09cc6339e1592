package eventlog

import (
	"context"
	"encoding/binary"
	"sync"

	pebblestore "github.com/arunmm8335/war-of-the-pixel/internal/storage/pebble"
)

// Log provides append-only operations for a single named stream.
type Log struct {
	db     *pebblestore.DB
	stream string

	mu       sync.Mutex
	lastSeq  uint64
	notifyCh chan struct{}
}

// OpenLog initializes a Log and restores the last sequence from stream
// metadata when present.
func OpenLog(db *pebblestore.DB, stream string) (*Log, error) {
	l := &Log{db: db, stream: stream, notifyCh: make(chan struct{})}
	meta, err := db.Get(KeyStreamMeta(stream))
	if err == nil && len(meta) >= 8 {
		l.lastSeq = binary.BigEndian.Uint64(meta[:8])
	}
	return l, nil
}

// Stream returns the stream name this log is bound to.
func (l *Log) Stream() string { return l.stream }

// Append writes one record atomically (entry plus updated metadata) and
// returns the assigned sequence. Waiters blocked in WaitForAppend are woken.
func (l *Log) Append(ctx context.Context, header, payload []byte) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.db.NewBatch()
	defer b.Close()

	seq := l.lastSeq + 1
	if err := b.Set(KeyEntry(l.stream, seq), EncodeRecord(header, payload), nil); err != nil {
		return 0, err
	}
	var meta [8]byte
	binary.BigEndian.PutUint64(meta[:], seq)
	if err := b.Set(KeyStreamMeta(l.stream), meta[:], nil); err != nil {
		return 0, err
	}
	if err := l.db.CommitBatch(ctx, b); err != nil {
		return 0, err
	}
	l.lastSeq = seq

	close(l.notifyCh)
	l.notifyCh = make(chan struct{})
	return seq, nil
}

// LastSeq returns the highest assigned sequence (0 when empty).
func (l *Log) LastSeq() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastSeq
}
