package fourmc

import (
	"io"

	"github.com/woozymasta/fourmc/internal/fourmc/xxhash32"
	"github.com/woozymasta/fourmc/internal/ioutil"
)

// Footer is the decoded block-offset footer. Deltas are in on-disk order:
// delta[0] is the absolute offset of block 0 (always HeaderSize for a
// non-empty stream), and delta[i] for i>0 is the distance from block i-1's
// start to block i's start.
type Footer struct {
	Deltas []uint32
	Magic  uint32
}

// Size returns the total on-disk footer size in bytes for N deltas.
func Size(n int) uint32 {
	return uint32(footerFixedOverhead + 4*n)
}

// WriteFooter serializes and writes the footer for the given stream magic
// and accumulated block index.
func WriteFooter(w io.Writer, magic uint32, deltas []uint32) error {
	size := Size(len(deltas))
	buf := make([]byte, size)

	ioutil.PutU32BE(buf, 0, size)
	ioutil.PutU32BE(buf, 4, FormatVersion)
	for i, d := range deltas {
		ioutil.PutU32BE(buf, 8+4*i, d)
	}
	off := 8 + 4*len(deltas)
	ioutil.PutU32BE(buf, off, size)
	ioutil.PutU32BE(buf, off+4, magic)
	ioutil.PutU32BE(buf, off+8, xxhash32.Sum32(buf[:off+8]))

	if _, err := w.Write(buf); err != nil {
		return Outputf("write footer", "%w", err)
	}
	return nil
}

// ReadFooter reads and validates a footer against the stream's header
// magic. The per-block deltas are always decoded and returned: sequential
// decoding does not need them, but the format requires the checksum and
// magic to be validated regardless, and callers wanting split-read support
// need the index.
func ReadFooter(r io.Reader, headerMagic uint32) (*Footer, error) {
	var head [8]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, Inputf("read footer head", "%w", err)
	}

	size := ioutil.GetU32BE(head[:], 0)
	version := ioutil.GetU32BE(head[:], 4)

	if size < footerFixedOverhead || (size-footerFixedOverhead)%4 != 0 {
		return nil, Contentf("read footer", "invalid footer_size %d", size)
	}
	if version != FormatVersion {
		return nil, Contentf("read footer", "unsupported footer_version %d", version)
	}

	n := int((size - footerFixedOverhead) / 4)

	rest := make([]byte, size-8)
	if _, err := io.ReadFull(r, rest); err != nil {
		return nil, Inputf("read footer body", "%w", err)
	}

	deltas := make([]uint32, n)
	for i := 0; i < n; i++ {
		deltas[i] = ioutil.GetU32BE(rest, 4*i)
	}

	off := 4 * n
	sizeRepeat := ioutil.GetU32BE(rest, off)
	streamMagic := ioutil.GetU32BE(rest, off+4)
	checksum := ioutil.GetU32BE(rest, off+8)

	if sizeRepeat != size {
		return nil, Contentf("read footer", "footer_size_repeat %d != footer_size %d", sizeRepeat, size)
	}
	if streamMagic != headerMagic {
		return nil, Contentf("read footer", "stream_magic 0x%08x != header magic 0x%08x", streamMagic, headerMagic)
	}

	full := make([]byte, 0, size-4)
	full = append(full, head[:]...)
	full = append(full, rest[:off+8]...)
	if got := xxhash32.Sum32(full); got != checksum {
		return nil, Contentf("read footer", "footer checksum mismatch: got 0x%08x, want 0x%08x", got, checksum)
	}

	return &Footer{Deltas: deltas, Magic: streamMagic}, nil
}

// Offsets converts the footer's deltas back into absolute byte offsets
// within the stream.
func (f *Footer) Offsets() []uint64 {
	out := make([]uint64, len(f.Deltas))
	var acc uint64
	for i, d := range f.Deltas {
		acc += uint64(d)
		out[i] = acc
	}
	return out
}
