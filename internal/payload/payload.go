// Package payload frames serialized filter documents for transport
// between the planner and scan nodes. The envelope is MessagePack; the
// body is zstd-compressed once it crosses a size threshold.
package payload

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// FormatJSON identifies a JSON filter document body.
const FormatJSON = "json"

// compressThreshold is the body size in bytes above which Pack
// compresses. Small documents are cheaper to send as-is.
const compressThreshold = 1 << 10

// envelope is the wire structure wrapping a filter document.
type envelope struct {
	Format     string `msgpack:"format"`
	Compressed bool   `msgpack:"compressed"`
	Body       []byte `msgpack:"body"`
}

// Package-level codec state. EncodeAll/DecodeAll are goroutine-safe, so
// one encoder/decoder pair serves all callers.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// Pack wraps a document body in the transport envelope.
func Pack(format string, body []byte) ([]byte, error) {
	env := envelope{Format: format, Body: body}
	if len(body) >= compressThreshold {
		env.Compressed = true
		env.Body = zstdEncoder.EncodeAll(body, make([]byte, 0, len(body)/2))
	}

	data, err := msgpack.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("payload: encode envelope: %w", err)
	}
	return data, nil
}

// Unpack opens a transport envelope and returns the document format and
// decompressed body.
func Unpack(data []byte) (string, []byte, error) {
	if len(data) == 0 {
		return "", nil, fmt.Errorf("payload: empty envelope")
	}

	var env envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return "", nil, fmt.Errorf("payload: decode envelope: %w", err)
	}

	body := env.Body
	if env.Compressed {
		out, err := zstdDecoder.DecodeAll(body, nil)
		if err != nil {
			return "", nil, fmt.Errorf("payload: decompress body: %w", err)
		}
		body = out
	}
	return env.Format, body, nil
}
