package codec

import (
	"github.com/pierrec/lz4/v4"
	"github.com/woozymasta/fourmc/internal/fourmc/ferr"
)

// lz4Codec implements Codec over pierrec/lz4/v4's block-level API, the same
// package the rest of this codebase's lineage already uses for its own
// block-oriented chunk compression.
type lz4Codec struct {
	level     Level
	hashTable []int
}

func newLZ4(level Level) *lz4Codec {
	return &lz4Codec{level: level}
}

// hcLevel maps the ordinal level to an LZ4-HC internal compression depth.
// Level 1 (fast) does not use HC at all. Level 2 (medium) is the "MC"
// mid-speed variant the spec calls for; pierrec/lz4/v4 has no distinct
// mid-speed mode, so it is approximated with a shallow HC search, which
// still decompresses with any standard LZ4 decoder per the spec's
// equivalence allowance.
func (c *lz4Codec) hcLevel() lz4.CompressionLevel {
	switch c.level {
	case LevelMedium:
		return lz4.CompressionLevel(2)
	case LevelHigh:
		return lz4.CompressionLevel(4)
	case LevelUltra:
		return lz4.CompressionLevel(8)
	default:
		return lz4.Fast
	}
}

func (c *lz4Codec) CompressBounded(src []byte, maxLen int) ([]byte, bool) {
	dst := make([]byte, maxLen)

	var n int
	var err error
	if c.level == LevelFast {
		if c.hashTable == nil {
			c.hashTable = make([]int, 1<<16)
		}
		n, err = lz4.CompressBlock(src, dst, c.hashTable)
	} else {
		n, err = lz4.CompressBlockHC(src, dst, c.hcLevel(), nil, nil)
	}
	if err != nil || n <= 0 {
		return nil, false
	}
	return dst[:n], true
}

func (c *lz4Codec) DecompressExact(src []byte, dstLen int) ([]byte, error) {
	dst := make([]byte, dstLen)
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, ferr.Contentf("lz4 decompress", "%w", err)
	}
	if n != dstLen {
		return nil, ferr.Contentf("lz4 decompress", "decoded %d bytes, want %d", n, dstLen)
	}
	return dst, nil
}

func (c *lz4Codec) Close() {}
