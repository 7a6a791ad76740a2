// Package encoder implements the streaming encoder engine: header, one
// block frame per input chunk, the end marker, and the block-offset
// footer, driven sequentially with no parallelism across blocks.
package encoder

import (
	"context"
	"io"

	"github.com/woozymasta/fourmc/internal/fourmc"
	"github.com/woozymasta/fourmc/internal/fourmc/codec"
)

// Encoder drives one stream's worth of header -> blocks -> end marker ->
// footer. It owns its codec and index accumulator exclusively from
// construction to Close; it is not safe to drive from multiple goroutines.
type Encoder struct {
	w       io.Writer
	variant fourmc.Variant
	codec   codec.Codec
	index   *blockIndex
	written uint64
}

// New constructs an Encoder writing a single stream of the given variant
// and ordinal compression level to w.
func New(w io.Writer, variant fourmc.Variant, level codec.Level) (*Encoder, error) {
	c, err := codec.New(uint32(variant), level)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		w:       w,
		variant: variant,
		codec:   c,
		index:   newBlockIndex(),
	}, nil
}

// Close releases the encoder's codec resources. It does not write anything;
// callers must already have completed Encode (or abandoned it) first.
func (e *Encoder) Close() {
	e.codec.Close()
}

// Encode reads r to exhaustion in BlockMax-sized chunks, writing the header
// once, one frame per non-empty chunk, the end marker, and the footer. ctx
// is checked once per block boundary so a caller can cancel a long-running
// encode; it is never checked mid-block, preserving the format's
// single-threaded, purely-blocking-I/O contract.
func (e *Encoder) Encode(ctx context.Context, r io.Reader) error {
	if err := fourmc.WriteHeader(e.w, e.variant); err != nil {
		return err
	}
	e.written += fourmc.HeaderSize

	buf := make([]byte, fourmc.BlockMax)
	for {
		if err := ctx.Err(); err != nil {
			return fourmc.Inputf("encode", "%w", err)
		}

		n, err := io.ReadFull(r, buf)
		if n > 0 {
			e.index.Record(e.written)
			written, werr := fourmc.WriteBlock(e.w, e.codec, buf[:n])
			if werr != nil {
				return werr
			}
			e.written += uint64(written)
		}

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return fourmc.Inputf("encode", "read input: %w", err)
		}
	}

	if err := fourmc.WriteEndMarker(e.w); err != nil {
		return err
	}
	e.written += fourmc.FrameSize

	return fourmc.WriteFooter(e.w, uint32(e.variant), e.index.Deltas())
}
