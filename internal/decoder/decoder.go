// Package decoder implements the streaming decoder engine for a single
// stream plus the multi-stream driver for concatenated archives.
package decoder

import (
	"context"
	"io"

	"github.com/woozymasta/fourmc/internal/fourmc"
	"github.com/woozymasta/fourmc/internal/fourmc/codec"
)

// DecodeOne decodes exactly one stream from r into w, returning the number
// of uncompressed bytes emitted. found is false when zero bytes were
// available before the header even started — a clean archive boundary,
// distinct from a stream that legitimately decodes to zero content (an
// empty-input stream still has a header, end marker and footer and so is
// still "found"). The returned index holds the decoded footer's absolute
// block offsets for callers that want split-read support; sequential
// decoding never needs it, but the footer's checksum and magic are always
// validated regardless.
func DecodeOne(ctx context.Context, r io.Reader, w io.Writer) (n int64, found bool, index []uint64, err error) {
	header, err := fourmc.ReadHeader(r)
	if err == io.EOF {
		return 0, false, nil, nil
	}
	if err != nil {
		return 0, false, nil, err
	}

	variant, err := fourmc.VariantFromMagic(header.Magic)
	if err != nil {
		return 0, false, nil, err
	}

	c, err := codec.New(uint32(variant), codec.LevelFast)
	if err != nil {
		return 0, false, nil, err
	}
	defer c.Close()

	var total int64

	for {
		if cerr := ctx.Err(); cerr != nil {
			return 0, false, nil, fourmc.Inputf("decode", "%w", cerr)
		}

		data, isEnd, berr := fourmc.ReadBlock(r, c)
		if berr != nil {
			return 0, false, nil, berr
		}
		if isEnd {
			break
		}

		written, werr := w.Write(data)
		if werr != nil {
			return 0, false, nil, fourmc.Outputf("decode", "write output: %w", werr)
		}
		total += int64(written)
	}

	footer, err := fourmc.ReadFooter(r, header.Magic)
	if err != nil {
		return 0, false, nil, err
	}

	return total, true, footer.Offsets(), nil
}

// DecodeAll runs DecodeOne in a loop until it reports a clean archive
// boundary, summing the uncompressed bytes emitted across every stream in
// the archive. Concatenation of valid streams is itself a valid archive.
func DecodeAll(ctx context.Context, r io.Reader, w io.Writer) (int64, error) {
	var total int64
	for {
		n, found, _, err := DecodeOne(ctx, r, w)
		if err != nil {
			return total, err
		}
		if !found {
			return total, nil
		}
		total += n
	}
}
