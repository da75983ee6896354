package expr

import (
	"fmt"
	"strings"
	"testing"
)

func TestPayloadRoundTrip(t *testing.T) {
	data, err := EncodePayload([]byte(simpleDoc))
	if err != nil {
		t.Fatalf("EncodePayload failed: %v", err)
	}

	tree, err := DecodePayload(data)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if len(tree.Conjuncts) != 1 {
		t.Fatalf("expected 1 conjunct, got %d", len(tree.Conjuncts))
	}
	if tree.Conjuncts[0].Op() != OpLT {
		t.Errorf("round trip lost the opcode: %s", tree.Conjuncts[0].Op())
	}
}

func TestPayloadRoundTripLargeSet(t *testing.T) {
	// A membership set big enough to trip body compression.
	members := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		members = append(members, fmt.Sprintf("%d", i))
	}
	doc := `{
		"conjuncts": [{
			"node_kind": "IN_PRED",
			"opcode": "FILTER_IN",
			"result_kind": "BOOLEAN",
			"children": [{"node_kind": "SLOT_REF", "result_kind": "INT", "slot_id": 0}],
			"set": [` + strings.Join(members, ",") + `]
		}]
	}`

	data, err := EncodePayload([]byte(doc))
	if err != nil {
		t.Fatalf("EncodePayload failed: %v", err)
	}

	tree, err := DecodePayload(data)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	in, ok := tree.Conjuncts[0].(*InExpr)
	if !ok {
		t.Fatalf("expected *InExpr, got %T", tree.Conjuncts[0])
	}
	if len(in.Set) != 500 {
		t.Errorf("expected 500 members, got %d", len(in.Set))
	}
}

func TestDecodePayloadRejectsUnknownFormat(t *testing.T) {
	if _, err := DecodePayload([]byte{0x00}); err == nil {
		t.Fatal("expected error for malformed envelope")
	}
}
