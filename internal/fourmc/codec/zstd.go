package codec

import (
	"github.com/klauspost/compress/zstd"
	"github.com/woozymasta/fourmc/internal/fourmc/ferr"
)

// zstdCodec implements Codec over klauspost/compress/zstd. Each block's
// payload is compressed and decompressed as an independent full zstd
// frame via EncodeAll/DecodeAll; there is no cross-block dictionary, which
// matches the format's "no in-stream dictionary or cross-block state" rule.
type zstdCodec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// levelFor maps the ordinal level to a zstd compression level per the
// container's level table.
func levelFor(level Level) zstd.EncoderLevel {
	switch level {
	case LevelFast:
		return zstd.SpeedFastest // level 1 equivalent
	case LevelMedium:
		return zstd.SpeedDefault // approximates level 3
	case LevelHigh:
		return zstd.SpeedBetterCompression // approximates level 6
	case LevelUltra:
		return zstd.SpeedBestCompression // approximates level 12
	default:
		return zstd.SpeedDefault
	}
}

func newZstd(level Level) (*zstdCodec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(levelFor(level)))
	if err != nil {
		return nil, ferr.Resourcef("zstd codec", "new encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, ferr.Resourcef("zstd codec", "new decoder: %w", err)
	}
	return &zstdCodec{enc: enc, dec: dec}, nil
}

func (c *zstdCodec) CompressBounded(src []byte, maxLen int) ([]byte, bool) {
	out := c.enc.EncodeAll(src, make([]byte, 0, maxLen))
	if len(out) == 0 || len(out) > maxLen {
		return nil, false
	}
	return out, true
}

func (c *zstdCodec) DecompressExact(src []byte, dstLen int) ([]byte, error) {
	out, err := c.dec.DecodeAll(src, make([]byte, 0, dstLen))
	if err != nil {
		return nil, ferr.Contentf("zstd decompress", "%w", err)
	}
	if len(out) != dstLen {
		return nil, ferr.Contentf("zstd decompress", "decoded %d bytes, want %d", len(out), dstLen)
	}
	return out, nil
}

func (c *zstdCodec) Close() {
	c.enc.Close()
	c.dec.Close()
}
