package payload

import (
	"bytes"
	"strings"
	"testing"
)

func TestPackUnpackSmall(t *testing.T) {
	body := []byte(`{"conjuncts": []}`)
	data, err := Pack(FormatJSON, body)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	format, got, err := Unpack(data)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if format != FormatJSON {
		t.Errorf("expected format %q, got %q", FormatJSON, format)
	}
	if !bytes.Equal(got, body) {
		t.Errorf("body mismatch: got %q", got)
	}
}

func TestPackCompressesLargeBody(t *testing.T) {
	body := []byte(strings.Repeat(`{"node_kind": "SLOT_REF", "slot_id": 0},`, 200))
	if len(body) < compressThreshold {
		t.Fatal("test body must exceed the compression threshold")
	}

	data, err := Pack(FormatJSON, body)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	// Repetitive JSON compresses well; the envelope must end up smaller
	// than the raw body.
	if len(data) >= len(body) {
		t.Errorf("expected compressed envelope, got %d bytes for a %d byte body", len(data), len(body))
	}

	_, got, err := Unpack(data)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Error("round trip through compression altered the body")
	}
}

func TestUnpackEmpty(t *testing.T) {
	if _, _, err := Unpack(nil); err == nil {
		t.Fatal("expected error for empty envelope")
	}
}

func TestUnpackGarbage(t *testing.T) {
	if _, _, err := Unpack([]byte("not msgpack at all")); err == nil {
		t.Fatal("expected error for malformed envelope")
	}
}
