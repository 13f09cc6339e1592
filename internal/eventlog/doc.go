// Package eventlog implements the append-only paint event log.
//
// # Overview
//
// The log is a totally ordered stream of records persisted in Pebble. Keys
// are lexicographically ordered for efficient range scans:
//   - stream/{name}/m              (stream metadata: lastSeq)
//   - stream/{name}/e/{seq_be8}    (entries)
//   - cursor/{name}/{group}        (durable consumer-group cursors)
//   - group/{name}/{group}         (group registration, created-at ms)
//
// Records are stored as: uvarint headerLen | header | payload | crc32c.
// Entries failing the CRC check are skipped by Read, so one corrupted
// record cannot abort a replay.
//
// API surface (internal)
//
//	l, _ := OpenLog(db, "pixel-events")
//	seq, _ := l.Append(ctx, nil, payload)          // auto-assigned seq
//	items, next := l.Read(ReadOptions{Limit: 100}) // forward scan + resume token
//	_ = l.EnsureGroup("web-backend")               // idempotent
//	_ = l.CommitCursor("web-backend", TokenFromSeq(seq)) // ack, no regression
//	woke := l.WaitForAppend(2 * time.Second)       // bounded blocking read
//
// The cursor is the only consumption state; an unacknowledged record is
// simply redelivered after restart, which consumers must tolerate.
package eventlog
