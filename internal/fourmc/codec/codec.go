// Package codec presents a uniform compress/decompress interface over the
// two block codecs the container format supports: LZ4 (github.com/pierrec/lz4/v4)
// and Zstandard (github.com/klauspost/compress/zstd). Both are used as
// black-box primitives; this package owns only level selection and the
// bounded/exact contracts the frame codec depends on.
//
// codec takes its variant selector as a plain uint32 magic number (matching
// internal/fourmc's MagicLZ4/MagicZstd) rather than internal/fourmc's own
// Variant type, and builds its errors via internal/fourmc/ferr rather than
// internal/fourmc directly: internal/fourmc imports this package to drive
// block compression, so this package cannot import internal/fourmc back
// without forming a cycle.
package codec

import (
	"github.com/woozymasta/fourmc/internal/fourmc/ferr"
	"github.com/woozymasta/fourmc/internal/fourmc/magic"
)

// Level is the user-facing ordinal compression level, 1 (fast) .. 4 (ultra).
type Level int

const (
	LevelFast   Level = 1
	LevelMedium Level = 2
	LevelHigh   Level = 3
	LevelUltra  Level = 4
)

// Valid reports whether l is one of the four defined ordinal levels.
func (l Level) Valid() bool {
	return l >= LevelFast && l <= LevelUltra
}

// Codec is a per-stream, per-level compressor/decompressor. A Codec is not
// safe for concurrent use; callers construct one per encoder/decoder
// instance, matching the single-threaded, exclusively-owned-buffers model
// the container format requires.
type Codec interface {
	// CompressBounded compresses src, requiring the result to fit within
	// maxLen bytes. It returns the compressed bytes and true on success;
	// otherwise (nil, false), the in-band signal for "did not fit /
	// incompressible" that triggers the frame codec's stored-verbatim
	// fallback. Callers pass maxLen = len(src)-1 so the decoder never
	// mistakes a codec frame for a stored-verbatim payload.
	CompressBounded(src []byte, maxLen int) (out []byte, ok bool)

	// DecompressExact decompresses src, requiring the result to be
	// exactly dstLen bytes. Any mismatch or malformed input is a content
	// error.
	DecompressExact(src []byte, dstLen int) ([]byte, error)

	// Close releases any codec-held resources (zstd encoders/decoders run
	// background goroutines that must be torn down).
	Close()
}

// New constructs the Codec for the stream identified by streamMagic (one of
// magic.LZ4 or magic.Zstd) at the given ordinal level.
func New(streamMagic uint32, level Level) (Codec, error) {
	if !level.Valid() {
		return nil, ferr.Contentf("codec", "invalid level %d", level)
	}
	switch streamMagic {
	case magic.LZ4:
		return newLZ4(level), nil
	case magic.Zstd:
		return newZstd(level)
	default:
		return nil, ferr.Contentf("codec", "unknown magic 0x%08x", streamMagic)
	}
}
