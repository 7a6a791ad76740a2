package fourmc

import (
	"io"

	"github.com/woozymasta/fourmc/internal/fourmc/codec"
)

// WriteBlock implements the block-writing sequence from the frame codec:
// attempt a bounded compression into len(raw)-1 bytes, and on success write
// a codec frame, otherwise fall back to a stored-verbatim frame. raw must
// be non-empty and at most BlockMax bytes. It returns the number of bytes
// written to w (FrameSize plus the on-disk payload length) so callers can
// track absolute offsets without duplicating the fallback decision.
func WriteBlock(w io.Writer, c codec.Codec, raw []byte) (written int, err error) {
	if len(raw) == 0 || len(raw) > BlockMax {
		return 0, Contentf("write block", "invalid raw length %d", len(raw))
	}

	if len(raw) > 1 {
		if out, ok := c.CompressBounded(raw, len(raw)-1); ok && len(out) > 0 {
			if err := WriteFrame(w, uint32(len(raw)), uint32(len(out)), out); err != nil {
				return 0, err
			}
			return FrameSize + len(out), nil
		}
	}

	if err := WriteFrame(w, uint32(len(raw)), uint32(len(raw)), raw); err != nil {
		return 0, err
	}
	return FrameSize + len(raw), nil
}

// ReadBlock implements the block-reading sequence from the frame codec: read
// a frame, report the end marker (isEnd=true), reject a frame whose sizes
// are zero or over BlockMax, verify the payload checksum, then decode or copy depending on whether the
// block was stored verbatim.
func ReadBlock(r io.Reader, c codec.Codec) (data []byte, isEnd bool, err error) {
	frame, err := ReadFrame(r)
	if err != nil {
		return nil, false, err
	}
	if frame.IsEndMarker() {
		return nil, true, nil
	}
	if err := frame.ValidateSizes(); err != nil {
		return nil, false, err
	}

	payload, err := frame.ReadPayload(r)
	if err != nil {
		return nil, false, err
	}

	if frame.IsStoredVerbatim() {
		return payload, false, nil
	}

	out, err := c.DecompressExact(payload, int(frame.UncompressedSize))
	if err != nil {
		return nil, false, err
	}
	return out, false, nil
}
