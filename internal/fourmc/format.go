package fourmc

import "github.com/woozymasta/fourmc/internal/fourmc/magic"

// Variant selects the per-block compression primitive. The container
// framing, indexing and integrity discipline are identical between
// variants; only the magic number and codec differ.
type Variant uint32

const (
	// VariantLZ4 selects the LZ4 block codec ("4mc").
	VariantLZ4 Variant = MagicLZ4
	// VariantZstd selects the Zstandard block codec ("4mz").
	VariantZstd Variant = MagicZstd
)

const (
	// MagicLZ4 identifies an LZ4-backed stream ("4mc").
	MagicLZ4 uint32 = magic.LZ4
	// MagicZstd identifies a Zstandard-backed stream ("4mz").
	MagicZstd uint32 = magic.Zstd

	// FormatVersion is the only header/footer version this implementation
	// accepts.
	FormatVersion uint32 = 1

	// HeaderSize is the fixed on-disk header size in bytes.
	HeaderSize = 12
	// FrameSize is the fixed on-disk block-frame size in bytes.
	FrameSize = 12
	// footerFixedOverhead is the footer's byte cost excluding the N
	// per-block deltas: footer_size, footer_version, footer_size_repeat,
	// stream_magic and footer_checksum, four bytes each.
	footerFixedOverhead = 20

	// BlockMax is the hard upper bound on a block's uncompressed_size and
	// stored_size in format version 1.
	BlockMax = 4 * 1024 * 1024
)

// String renders the variant's canonical extension-free name.
func (v Variant) String() string {
	switch uint32(v) {
	case MagicLZ4:
		return "lz4"
	case MagicZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// Extension returns the filename extension associated with the variant.
func (v Variant) Extension() string {
	switch uint32(v) {
	case MagicLZ4:
		return ".4mc"
	case MagicZstd:
		return ".4mz"
	default:
		return ""
	}
}

// VariantFromMagic maps a decoded header magic to a Variant, failing on any
// value other than the two defined magics.
func VariantFromMagic(magic uint32) (Variant, error) {
	switch magic {
	case MagicLZ4, MagicZstd:
		return Variant(magic), nil
	default:
		return 0, Contentf("header", "unknown magic 0x%08x", magic)
	}
}
