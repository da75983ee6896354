package expr

import (
	"fmt"

	"github.com/seekdb/es-pushdown-go/internal/payload"
)

// EncodePayload frames an already-marshaled filter document in the
// transport envelope used between planner and scan nodes: a MessagePack
// header with zstd body compression for large documents (membership
// sets can get big).
func EncodePayload(doc []byte) ([]byte, error) {
	return payload.Pack(payload.FormatJSON, doc)
}

// DecodePayload unwraps a transport envelope and parses the contained
// filter document.
func DecodePayload(data []byte) (*Tree, error) {
	format, body, err := payload.Unpack(data)
	if err != nil {
		return nil, err
	}
	if format != payload.FormatJSON {
		return nil, fmt.Errorf("expr: unsupported payload format %q", format)
	}
	return Parse(body)
}
