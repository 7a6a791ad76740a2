package fourmc

import (
	"bytes"
	"testing"
)

func TestFooterRoundTrip(t *testing.T) {
	t.Parallel()

	deltas := []uint32{HeaderSize, 100, 200, 50}
	var buf bytes.Buffer
	if err := WriteFooter(&buf, MagicLZ4, deltas); err != nil {
		t.Fatalf("WriteFooter: %v", err)
	}
	if uint32(buf.Len()) != Size(len(deltas)) {
		t.Fatalf("footer length = %d, want %d", buf.Len(), Size(len(deltas)))
	}

	footer, err := ReadFooter(&buf, MagicLZ4)
	if err != nil {
		t.Fatalf("ReadFooter: %v", err)
	}
	if len(footer.Deltas) != len(deltas) {
		t.Fatalf("got %d deltas, want %d", len(footer.Deltas), len(deltas))
	}
	for i, d := range deltas {
		if footer.Deltas[i] != d {
			t.Errorf("delta[%d] = %d, want %d", i, footer.Deltas[i], d)
		}
	}
}

func TestFooterEmptyStream(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteFooter(&buf, MagicZstd, nil); err != nil {
		t.Fatalf("WriteFooter: %v", err)
	}

	footer, err := ReadFooter(&buf, MagicZstd)
	if err != nil {
		t.Fatalf("ReadFooter: %v", err)
	}
	if len(footer.Deltas) != 0 {
		t.Fatalf("expected no deltas for an empty stream, got %d", len(footer.Deltas))
	}
	if len(footer.Offsets()) != 0 {
		t.Fatalf("expected no offsets for an empty stream")
	}
}

func TestFooterOffsetsAccumulateDeltas(t *testing.T) {
	t.Parallel()

	footer := &Footer{Deltas: []uint32{12, 100, 50}}
	offsets := footer.Offsets()
	want := []uint64{12, 112, 162}
	if len(offsets) != len(want) {
		t.Fatalf("got %d offsets, want %d", len(offsets), len(want))
	}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("offsets[%d] = %d, want %d", i, offsets[i], want[i])
		}
	}
}

func TestFooterRejectsMagicMismatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteFooter(&buf, MagicLZ4, []uint32{12}); err != nil {
		t.Fatalf("WriteFooter: %v", err)
	}
	if _, err := ReadFooter(&buf, MagicZstd); err == nil {
		t.Fatal("ReadFooter should reject a stream_magic mismatch against the header magic")
	}
}

func TestFooterRejectsCorruptedChecksum(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteFooter(&buf, MagicLZ4, []uint32{12, 34}); err != nil {
		t.Fatalf("WriteFooter: %v", err)
	}
	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0x01 // corrupt the stored footer_checksum

	if _, err := ReadFooter(bytes.NewReader(raw), MagicLZ4); err == nil {
		t.Fatal("ReadFooter should reject a corrupted footer")
	}
}

func TestFooterRejectsSizeRepeatMismatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteFooter(&buf, MagicLZ4, []uint32{12}); err != nil {
		t.Fatalf("WriteFooter: %v", err)
	}
	raw := buf.Bytes()
	off := 8 + 4*1
	raw[off] ^= 0x01 // corrupt footer_size_repeat only

	if _, err := ReadFooter(bytes.NewReader(raw), MagicLZ4); err == nil {
		t.Fatal("ReadFooter should reject a footer_size_repeat mismatch")
	}
}
