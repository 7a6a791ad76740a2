package fourmc

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	t.Parallel()

	for _, variant := range []Variant{VariantLZ4, VariantZstd} {
		variant := variant
		t.Run(variant.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := WriteHeader(&buf, variant); err != nil {
				t.Fatalf("WriteHeader: %v", err)
			}
			if buf.Len() != HeaderSize {
				t.Fatalf("header length = %d, want %d", buf.Len(), HeaderSize)
			}

			h, err := ReadHeader(&buf)
			if err != nil {
				t.Fatalf("ReadHeader: %v", err)
			}
			if h.Magic != uint32(variant) {
				t.Errorf("Magic = %#x, want %#x", h.Magic, uint32(variant))
			}
			if h.Version != FormatVersion {
				t.Errorf("Version = %d, want %d", h.Version, FormatVersion)
			}
		})
	}
}

func TestReadHeaderCleanEOF(t *testing.T) {
	t.Parallel()

	_, err := ReadHeader(bytes.NewReader(nil))
	if err != io.EOF {
		t.Fatalf("ReadHeader(empty) = %v, want io.EOF", err)
	}
}

func TestReadHeaderShortReadIsContentError(t *testing.T) {
	t.Parallel()

	_, err := ReadHeader(bytes.NewReader([]byte{0x34, 0x4D}))
	if err == nil {
		t.Fatal("ReadHeader(short) should fail")
	}
	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != KindContent {
		t.Fatalf("ReadHeader(short) = %v, want a content error", err)
	}
}

func TestReadHeaderRejectsBadChecksum(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteHeader(&buf, VariantLZ4); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	corrupt := buf.Bytes()
	corrupt[len(corrupt)-1] ^= 0xFF

	if _, err := ReadHeader(bytes.NewReader(corrupt)); err == nil {
		t.Fatal("ReadHeader should reject a corrupted checksum")
	}
}

func TestReadHeaderRejectsUnknownMagic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteHeader(&buf, VariantLZ4); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	corrupt := buf.Bytes()
	corrupt[0] = 0xFF

	if _, err := ReadHeader(bytes.NewReader(corrupt)); err == nil {
		t.Fatal("ReadHeader should reject an unknown magic")
	}
}

func TestReadHeaderRejectsBadVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteHeader(&buf, VariantLZ4); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	corrupt := buf.Bytes()
	corrupt[7] = 9 // bump version without fixing checksum

	if _, err := ReadHeader(bytes.NewReader(corrupt)); err == nil {
		t.Fatal("ReadHeader should reject an unsupported version")
	}
}
