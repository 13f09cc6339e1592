package eventlog

import "testing"

func TestRecordRoundtrip(t *testing.T) {
	header := []byte("h")
	payload := []byte(`{"x":"1","y":"2","color":"#FF0000"}`)
	rec := EncodeRecord(header, payload)
	dec, ok := DecodeRecord(rec)
	if !ok {
		t.Fatalf("decode failed")
	}
	if string(dec.Header) != string(header) {
		t.Fatalf("header mismatch")
	}
	if string(dec.Payload) != string(payload) {
		t.Fatalf("payload mismatch")
	}
}

func TestRecordEmptyHeader(t *testing.T) {
	rec := EncodeRecord(nil, []byte("p"))
	dec, ok := DecodeRecord(rec)
	if !ok || len(dec.Header) != 0 || string(dec.Payload) != "p" {
		t.Fatalf("empty-header record mishandled: %v %q", ok, dec.Payload)
	}
}

func TestRecordCRCFail(t *testing.T) {
	rec := EncodeRecord([]byte("x"), []byte("y"))
	rec[len(rec)-1] ^= 0xFF // corrupt one byte
	if _, ok := DecodeRecord(rec); ok {
		t.Fatalf("expected crc failure")
	}
}

func TestRecordTruncated(t *testing.T) {
	if _, ok := DecodeRecord([]byte{0x01}); ok {
		t.Fatalf("expected failure on truncated record")
	}
}
