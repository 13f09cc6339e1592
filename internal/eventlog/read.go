package eventlog

import (
	"encoding/binary"

	"github.com/cockroachdb/pebble"
)

// Token encodes a log position as an 8-byte big-endian sequence.
type Token [8]byte

// TokenFromSeq builds the token addressing seq.
func TokenFromSeq(seq uint64) Token {
	var t Token
	binary.BigEndian.PutUint64(t[:], seq)
	return t
}

// Seq returns the sequence the token addresses.
func (t Token) Seq() uint64 { return binary.BigEndian.Uint64(t[:]) }

// ReadOptions selects a forward range scan over the stream.
type ReadOptions struct {
	// Start is the first sequence to include; the zero token starts at the
	// beginning of the stream.
	Start Token
	// Limit bounds the number of returned items; 0 means unbounded.
	Limit int
}

// Item is one decoded log record with its assigned sequence.
type Item struct {
	Seq     uint64
	Header  []byte
	Payload []byte
}

// Read returns up to Limit items starting at Start (inclusive) and the
// token to resume from. Records failing the CRC check are skipped.
func (l *Log) Read(opts ReadOptions) ([]Item, Token) {
	low := KeyEntry(l.stream, 0)
	hi := KeyEntry(l.stream, ^uint64(0))

	items := make([]Item, 0, maxInt(1, opts.Limit))
	var next Token

	iter, err := l.db.NewIter(&pebble.IterOptions{LowerBound: low, UpperBound: append(hi, 0x00)})
	if err != nil {
		return items, next
	}
	defer iter.Close()

	startSeq := opts.Start.Seq()
	if startSeq == 0 {
		if !iter.First() {
			return items, next
		}
	} else if !iter.SeekGE(KeyEntry(l.stream, startSeq)) {
		return items, next
	}

	for iter.Valid() && (opts.Limit == 0 || len(items) < opts.Limit) {
		seq := seqFromEntryKey(iter.Key())
		if dec, ok := DecodeRecord(iter.Value()); ok {
			items = append(items, Item{Seq: seq, Header: dec.Header, Payload: dec.Payload})
		}
		if !iter.Next() {
			return items, next
		}
	}
	if iter.Valid() {
		next = TokenFromSeq(seqFromEntryKey(iter.Key()))
	}
	return items, next
}

// seqFromEntryKey extracts the trailing big-endian sequence of an entry key.
func seqFromEntryKey(key []byte) uint64 {
	return binary.BigEndian.Uint64(key[len(key)-8:])
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
