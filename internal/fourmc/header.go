package fourmc

import (
	"io"

	"github.com/woozymasta/fourmc/internal/fourmc/xxhash32"
	"github.com/woozymasta/fourmc/internal/ioutil"
)

// Header is the 12-byte stream header: magic, version and a checksum over
// the first 8 bytes.
type Header struct {
	Magic   uint32
	Version uint32
}

// headerChecksum computes the xxhash-32 checksum over the magic+version
// bytes that precede it in the on-disk layout.
func headerChecksum(magic, version uint32) uint32 {
	var buf [8]byte
	ioutil.PutU32BE(buf[:], 0, magic)
	ioutil.PutU32BE(buf[:], 4, version)
	return xxhash32.Sum32(buf[:])
}

// WriteHeader writes a fresh Header for the given variant.
func WriteHeader(w io.Writer, variant Variant) error {
	var buf [HeaderSize]byte
	ioutil.PutU32BE(buf[:], 0, uint32(variant))
	ioutil.PutU32BE(buf[:], 4, FormatVersion)
	ioutil.PutU32BE(buf[:], 8, headerChecksum(uint32(variant), FormatVersion))

	if _, err := w.Write(buf[:]); err != nil {
		return Outputf("write header", "%w", err)
	}
	return nil
}

// ReadHeader reads and validates a Header. A zero-byte read at the very
// start of r is reported back as (nil, io.EOF) so the multi-stream driver
// can tell "clean end of archive" from a real failure; one to three magic
// bytes is a content error, and a short read of the remaining eight header
// bytes is an input error.
func ReadHeader(r io.Reader) (*Header, error) {
	var first [4]byte
	n, err := ioutil.ReadFullOrEOF(r, first[:])
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, Inputf("read header magic", "%w", err)
	}
	if n == 0 {
		return nil, io.EOF
	}
	if n < 4 {
		return nil, Contentf("read header magic", "short read: got %d of 4 bytes", n)
	}

	magic := ioutil.GetU32BE(first[:], 0)

	var rest [HeaderSize - 4]byte
	if _, err := io.ReadFull(r, rest[:]); err != nil {
		return nil, Inputf("read header body", "%w", err)
	}

	version := ioutil.GetU32BE(rest[:], 0)
	checksum := ioutil.GetU32BE(rest[:], 4)

	if _, err := VariantFromMagic(magic); err != nil {
		return nil, err
	}
	if version != FormatVersion {
		return nil, Contentf("read header", "unsupported version %d", version)
	}
	if want := headerChecksum(magic, version); checksum != want {
		return nil, Contentf("read header", "header checksum mismatch: got 0x%08x, want 0x%08x", checksum, want)
	}

	return &Header{Magic: magic, Version: version}, nil
}
