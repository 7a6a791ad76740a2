// Package magic holds the two on-disk stream magic numbers in a leaf
// package that both internal/fourmc and internal/fourmc/codec can import
// without internal/fourmc/codec needing to depend on internal/fourmc.
package magic

const (
	// LZ4 identifies an LZ4-backed stream ("4mc").
	LZ4 uint32 = 0x344D4300
	// Zstd identifies a Zstandard-backed stream ("4mz").
	Zstd uint32 = 0x344D5A00
)
