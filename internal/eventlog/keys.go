package eventlog

import "encoding/binary"

// Keyspace helpers for Pebble keys.
//
// Layout (byte-wise, lexicographically sortable):
// - stream/{name}/m
// - stream/{name}/e/{seq_be8}
// - cursor/{name}/{group}
// - group/{name}/{group}

var (
	sep          = byte('/')
	streamPrefix = []byte("stream/")
	cursorPrefix = []byte("cursor/")
	groupPrefix  = []byte("group/")
	metaSuffix   = []byte("/m")
	entrySeg     = []byte("/e/")
)

func appendBE8(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// KeyStreamMeta builds the stream metadata key.
func KeyStreamMeta(stream string) []byte {
	k := make([]byte, 0, len(streamPrefix)+len(stream)+len(metaSuffix))
	k = append(k, streamPrefix...)
	k = append(k, stream...)
	k = append(k, metaSuffix...)
	return k
}

// KeyEntry builds an entry key with a big-endian sequence for ordering.
func KeyEntry(stream string, seq uint64) []byte {
	k := make([]byte, 0, len(streamPrefix)+len(stream)+len(entrySeg)+8)
	k = append(k, streamPrefix...)
	k = append(k, stream...)
	k = append(k, entrySeg...)
	k = appendBE8(k, seq)
	return k
}

// KeyCursor builds the durable cursor key for a consumer group.
func KeyCursor(stream, group string) []byte {
	k := make([]byte, 0, len(cursorPrefix)+len(stream)+len(group)+1)
	k = append(k, cursorPrefix...)
	k = append(k, stream...)
	k = append(k, sep)
	k = append(k, group...)
	return k
}

// KeyGroup builds the registration key for a consumer group.
func KeyGroup(stream, group string) []byte {
	k := make([]byte, 0, len(groupPrefix)+len(stream)+len(group)+1)
	k = append(k, groupPrefix...)
	k = append(k, stream...)
	k = append(k, sep)
	k = append(k, group...)
	return k
}
