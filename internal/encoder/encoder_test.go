package encoder

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/woozymasta/fourmc/internal/fourmc"
	"github.com/woozymasta/fourmc/internal/fourmc/codec"
)

func TestEncodeWritesHeaderAndEndMarkerForEmptyInput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc, err := New(&buf, fourmc.VariantLZ4, codec.LevelFast)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer enc.Close()

	if err := enc.Encode(context.Background(), bytes.NewReader(nil)); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// header + end marker + footer with zero deltas.
	want := fourmc.HeaderSize + fourmc.FrameSize + int(fourmc.Size(0))
	if buf.Len() != want {
		t.Fatalf("encoded empty stream length = %d, want %d", buf.Len(), want)
	}
}

func TestEncodeCancelledContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc, err := New(&buf, fourmc.VariantLZ4, codec.LevelFast)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer enc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = enc.Encode(ctx, bytes.NewReader(bytes.Repeat([]byte("x"), 10)))
	if err == nil {
		t.Fatal("Encode should fail on an already-cancelled context")
	}
}

type failingWriter struct {
	failAfter int
	written   int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.written >= f.failAfter {
		return 0, errors.New("simulated write failure")
	}
	f.written += len(p)
	return len(p), nil
}

func TestEncodePropagatesWriteFailure(t *testing.T) {
	t.Parallel()

	w := &failingWriter{failAfter: fourmc.HeaderSize} // header write succeeds, the first block frame does not
	enc, err := New(w, fourmc.VariantLZ4, codec.LevelFast)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer enc.Close()

	err = enc.Encode(context.Background(), bytes.NewReader([]byte("data")))
	if err == nil {
		t.Fatal("Encode should propagate a downstream write failure")
	}
}

func TestEncodePropagatesReadFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc, err := New(&buf, fourmc.VariantLZ4, codec.LevelFast)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer enc.Close()

	err = enc.Encode(context.Background(), errReader{})
	if err == nil {
		t.Fatal("Encode should propagate a reader failure")
	}
}

type errReader struct{}

func (errReader) Read(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}
