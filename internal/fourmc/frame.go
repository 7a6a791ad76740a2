package fourmc

import (
	"io"

	"github.com/woozymasta/fourmc/internal/fourmc/xxhash32"
	"github.com/woozymasta/fourmc/internal/ioutil"
)

// Frame is a decoded 12-byte block frame header.
type Frame struct {
	UncompressedSize uint32
	StoredSize       uint32
	PayloadChecksum  uint32
}

// IsEndMarker reports whether the frame is the all-zero terminator.
func (f Frame) IsEndMarker() bool {
	return f.UncompressedSize == 0 && f.StoredSize == 0 && f.PayloadChecksum == 0
}

// WriteFrame writes a single BlockFrame followed by its payload exactly as
// given: the caller has already decided stored vs. compressed and computed
// sizes accordingly. The payload checksum is computed here over the bytes
// actually written to disk.
func WriteFrame(w io.Writer, uncompressedSize, storedSize uint32, payload []byte) error {
	var buf [FrameSize]byte
	ioutil.PutU32BE(buf[:], 0, uncompressedSize)
	ioutil.PutU32BE(buf[:], 4, storedSize)
	ioutil.PutU32BE(buf[:], 8, xxhash32.Sum32(payload))

	if _, err := w.Write(buf[:]); err != nil {
		return Outputf("write frame", "%w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return Outputf("write payload", "%w", err)
	}
	return nil
}

// WriteEndMarker writes the all-zero 12-byte terminator frame.
func WriteEndMarker(w io.Writer) error {
	var buf [FrameSize]byte
	if _, err := w.Write(buf[:]); err != nil {
		return Outputf("write end marker", "%w", err)
	}
	return nil
}

// ReadFrame reads a single 12-byte frame header. It does not read the
// payload; callers inspect IsEndMarker and the declared sizes first.
func ReadFrame(r io.Reader) (Frame, error) {
	var buf [FrameSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Frame{}, Inputf("read frame", "%w", err)
	}

	return Frame{
		UncompressedSize: ioutil.GetU32BE(buf[:], 0),
		StoredSize:       ioutil.GetU32BE(buf[:], 4),
		PayloadChecksum:  ioutil.GetU32BE(buf[:], 8),
	}, nil
}

// ValidateSizes rejects a non-terminal frame whose declared sizes violate
// the block-size invariants: both sizes must be in (0, BlockMax].
func (f Frame) ValidateSizes() error {
	if f.UncompressedSize == 0 || f.UncompressedSize > BlockMax {
		return Contentf("frame", "uncompressed_size %d out of range (0, %d]", f.UncompressedSize, BlockMax)
	}
	if f.StoredSize == 0 || f.StoredSize > BlockMax {
		return Contentf("frame", "stored_size %d out of range (0, %d]", f.StoredSize, BlockMax)
	}
	return nil
}

// ReadPayload reads StoredSize payload bytes and verifies the payload
// checksum.
func (f Frame) ReadPayload(r io.Reader) ([]byte, error) {
	buf := make([]byte, f.StoredSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, Inputf("read payload", "%w", err)
	}
	if got := xxhash32.Sum32(buf); got != f.PayloadChecksum {
		return nil, Contentf("read payload", "payload checksum mismatch: got 0x%08x, want 0x%08x", got, f.PayloadChecksum)
	}
	return buf, nil
}

// IsStoredVerbatim reports whether the frame's payload is stored raw rather
// than codec-compressed.
func (f Frame) IsStoredVerbatim() bool {
	return f.StoredSize == f.UncompressedSize
}
