package eventlog

import (
	"encoding/binary"
	"time"
)

// EnsureGroup registers a consumer group on the stream. Registration is
// idempotent: ensuring a group that already exists is not an error and
// leaves its cursor untouched.
func (l *Log) EnsureGroup(group string) error {
	key := KeyGroup(l.stream, group)
	if b, err := l.db.Get(key); err == nil && len(b) >= 8 {
		return nil
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(time.Now().UnixMilli()))
	return l.db.Set(key, b[:])
}

// HasGroup reports whether the group has been registered on this stream.
func (l *Log) HasGroup(group string) bool {
	b, err := l.db.Get(KeyGroup(l.stream, group))
	return err == nil && len(b) >= 8
}
