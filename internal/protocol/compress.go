package protocol

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// maxDocumentSize bounds the decompressed size of an imported document.
const maxDocumentSize = 64 << 20

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// The encoder and decoder are safe for concurrent use and reused across calls.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("protocol: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDocumentSize))
	if err != nil {
		panic("protocol: zstd decoder initialization failed: " + err.Error())
	}
}

// IsCompressed reports whether b starts with a zstd frame.
func IsCompressed(b []byte) bool { return bytes.HasPrefix(b, zstdMagic) }

// Compress wraps a document in a zstd frame.
func Compress(doc []byte) []byte { return zstdEncoder.EncodeAll(doc, nil) }

// Decompress unwraps a zstd frame. Input that is not compressed is returned
// unchanged.
func Decompress(b []byte) ([]byte, error) {
	if !IsCompressed(b) {
		return b, nil
	}
	out, err := zstdDecoder.DecodeAll(b, nil)
	if err != nil {
		return nil, fmt.Errorf("protocol: zstd decompress: %w", err)
	}
	return out, nil
}
