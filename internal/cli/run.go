package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/woozymasta/fourmc/internal/decoder"
	"github.com/woozymasta/fourmc/internal/encoder"
	"github.com/woozymasta/fourmc/internal/fourmc"
	"github.com/woozymasta/fourmc/internal/fourmc/codec"
)

// runMain implements the default compress/decompress action: resolve the
// codec variant and level, resolve input/output paths per the filename
// heuristics, apply the overwrite prompt, and drive the encoder or decoder
// engine to completion.
func runMain(r *Root) error {
	variant := fourmc.VariantLZ4
	if r.Zstd {
		variant = fourmc.VariantZstd
	}
	level := resolveLevel(r)

	in, inClose, err := openInput(r.Args.Input)
	if err != nil {
		return err
	}
	defer inClose()

	if r.Decompress {
		return runDecompress(r, in)
	}
	return runCompress(r, in, variant, level)
}

// resolveLevel picks the ordinal level from the -1/-2/-3/-4 flags,
// defaulting to fast (1) when none is given, matching the CLI surface's
// documented default.
func resolveLevel(r *Root) codec.Level {
	switch {
	case r.Level4:
		return codec.LevelUltra
	case r.Level3:
		return codec.LevelHigh
	case r.Level2:
		return codec.LevelMedium
	default:
		return codec.LevelFast
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		if isTerminal(os.Stdin) {
			return nil, nil, fourmc.Inputf("open input", "refusing to read binary data from a terminal (use - explicitly with a redirect)")
		}
		return bufio.NewReader(os.Stdin), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fourmc.Inputf("open input", "%w", err)
	}
	return bufio.NewReader(f), func() { _ = f.Close() }, nil
}

// runCompress drives the encoder engine, resolving the output path from
// the extension heuristics (appending the variant extension when no
// explicit output was given) and applying the overwrite prompt.
func runCompress(r *Root, in io.Reader, variant fourmc.Variant, level codec.Level) error {
	outPath := r.Args.Output
	if outPath == "" && !r.Stdout && r.Args.Input != "" && r.Args.Input != "-" {
		outPath = r.Args.Input + variant.Extension()
	}

	out, outClose, err := openOutput(outPath, r)
	if err != nil {
		return err
	}
	defer outClose()

	enc, err := encoder.New(out, variant, level)
	if err != nil {
		return err
	}
	defer enc.Close()

	if err := enc.Encode(context.Background(), in); err != nil {
		return err
	}

	if r.Verbosity() > 0 {
		fmt.Fprintf(os.Stderr, "4mc: compressed %s as %s (%s, level %d)\n", displayName(r.Args.Input), displayName(outPath), variant, level)
	}
	return nil
}

// runDecompress drives the decoder engine. -t routes output to a null
// sink; otherwise the output path is resolved by stripping the variant
// extension. The variant itself is taken from each stream's header magic,
// not from the extension.
func runDecompress(r *Root, in io.Reader) error {
	if r.Test {
		_, err := decoder.DecodeAll(context.Background(), in, io.Discard)
		return err
	}

	outPath := r.Args.Output
	if outPath == "" && !r.Stdout && r.Args.Input != "" && r.Args.Input != "-" {
		outPath = stripKnownExtension(r.Args.Input)
	}

	out, outClose, err := openOutput(outPath, r)
	if err != nil {
		return err
	}
	defer outClose()

	n, err := decoder.DecodeAll(context.Background(), in, out)
	if err != nil {
		return err
	}

	if r.Verbosity() > 0 {
		fmt.Fprintf(os.Stderr, "4mc: decompressed %s to %s (%d bytes)\n", displayName(r.Args.Input), displayName(outPath), n)
	}
	return nil
}

func openOutput(path string, r *Root) (io.Writer, func(), error) {
	if path == "" || r.Stdout {
		if isTerminal(os.Stdout) && !r.Stdout {
			return nil, nil, fourmc.Outputf("open output", "refusing to write binary data to a terminal (use -c explicitly)")
		}
		w := bufio.NewWriter(os.Stdout)
		return w, func() { _ = w.Flush() }, nil
	}

	if !r.Force {
		if _, err := os.Stat(path); err == nil {
			if !confirmOverwrite(path, r) {
				return nil, nil, fourmc.Outputf("open output", "not overwriting existing file %q", path)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fourmc.Outputf("open output", "%w", err)
	}
	w := bufio.NewWriter(f)
	return w, func() { _ = w.Flush(); _ = f.Close() }, nil
}

// confirmOverwrite prompts Y/N on stderr unless verbosity is quiet or -f
// was given (the caller already checked -f before calling this).
func confirmOverwrite(path string, r *Root) bool {
	if r.Quiet {
		return false
	}
	fmt.Fprintf(os.Stderr, "4mc: output file %q already exists; overwrite (y/N)? ", path)

	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

// Verbosity returns the effective verbosity level: -v increments, -q
// forces it to zero.
func (r *Root) Verbosity() int {
	if r.Quiet {
		return 0
	}
	return len(r.Verbose)
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "<stdio>"
	}
	return path
}

// stripKnownExtension removes a trailing .4mc or .4mz extension, per the
// CLI's filename heuristics.
func stripKnownExtension(path string) string {
	for _, ext := range []string{fourmc.VariantLZ4.Extension(), fourmc.VariantZstd.Extension()} {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext)
		}
	}
	return path + ".out"
}
