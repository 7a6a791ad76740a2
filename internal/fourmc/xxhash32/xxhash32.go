// Package xxhash32 wraps the seed-0 xxhash-32 digest used for every
// checksum in the container format: header, per-block payload and footer.
package xxhash32

import "github.com/pierrec/xxHash/xxHash32"

// Seed is the fixed seed the format uses for all xxhash-32 checksums.
const Seed = 0

// Sum32 returns the seed-0 xxhash-32 digest of b.
func Sum32(b []byte) uint32 {
	h := xxHash32.New(Seed)
	h.Write(b) //nolint:errcheck // hash.Hash.Write never errors.
	return h.Sum32()
}
