package encoder

// blockIndex is an append-only ordered sequence of absolute output offsets,
// backed by a slice with geometric growth starting at capacity 8. An offset is recorded immediately before a block's frame is
// written, so offset 0 always equals fourmc.HeaderSize.
type blockIndex struct {
	offsets []uint64
}

func newBlockIndex() *blockIndex {
	return &blockIndex{offsets: make([]uint64, 0, 8)}
}

// Record appends the next absolute offset. Growth is handled by Go's slice
// append, which grows capacity geometrically once it is exhausted (doubling
// while the slice is small, by a smaller factor after that); there is no
// explicit growth logic beyond pre-sizing the initial capacity.
func (b *blockIndex) Record(offset uint64) {
	b.offsets = append(b.offsets, offset)
}

// Deltas converts the recorded absolute offsets into the on-disk delta
// encoding: delta[0] is offsets[0] itself (the stream-start-to-block-0
// distance), delta[i] for i>0 is offsets[i]-offsets[i-1].
func (b *blockIndex) Deltas() []uint32 {
	deltas := make([]uint32, len(b.offsets))
	var prev uint64
	for i, off := range b.offsets {
		deltas[i] = uint32(off - prev)
		prev = off
	}
	return deltas
}

// Len returns the number of recorded blocks.
func (b *blockIndex) Len() int { return len(b.offsets) }
