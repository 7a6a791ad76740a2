package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/fourmc/internal/decoder"
	"github.com/woozymasta/fourmc/internal/encoder"
	"github.com/woozymasta/fourmc/internal/fourmc"
	"github.com/woozymasta/fourmc/internal/fourmc/codec"
)

// batchJob describes one compress/decompress job in a batch config file,
// generalizing the teacher's per-project build config to a single
// input/output/variant/level tuple.
type batchJob struct {
	Input         string `yaml:"input"`
	Output        string `yaml:"output"`
	Zstd          bool   `yaml:"zstd" default:"false"`
	Level         int    `yaml:"level" default:"1"`
	Decompress    bool   `yaml:"decompress" default:"false"`
	Force         bool   `yaml:"force" default:"false"`
	SkipUnchanged bool   `yaml:"skip_unchanged" default:"false"`
}

// CmdBatch runs a list of compress/decompress jobs described by a YAML
// config file, the same config-driven shape as the teacher's "build"
// subcommand generalized from image-packing projects to codec jobs.
type CmdBatch struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"Path to batch YAML config file" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the batch command.
func (c *CmdBatch) Execute(args []string) error {
	return c.run()
}

func (c *CmdBatch) run() error {
	data, err := os.ReadFile(c.Args.Path)
	if err != nil {
		return fourmc.Inputf("batch", "read config %q: %w", c.Args.Path, err)
	}

	var doc struct {
		Jobs []batchJob `yaml:"jobs"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fourmc.Inputf("batch", "parse config %q: %w", c.Args.Path, err)
	}
	if len(doc.Jobs) == 0 {
		return fourmc.Inputf("batch", "no jobs found in %q", c.Args.Path)
	}

	baseDir := filepath.Dir(c.Args.Path)

	for i := range doc.Jobs {
		if err := defaults.Set(&doc.Jobs[i]); err != nil {
			return fourmc.Inputf("batch", "apply defaults: %w", err)
		}
		doc.Jobs[i].Input = resolveRelative(baseDir, doc.Jobs[i].Input)
		doc.Jobs[i].Output = resolveRelative(baseDir, doc.Jobs[i].Output)

		if err := runBatchJob(doc.Jobs[i]); err != nil {
			return err
		}
	}

	return nil
}

func runBatchJob(job batchJob) error {
	variant := fourmc.VariantLZ4
	if job.Zstd {
		variant = fourmc.VariantZstd
	}
	level := codec.Level(job.Level)
	if !level.Valid() {
		level = codec.LevelFast
	}

	var inputHash uint64
	if job.SkipUnchanged {
		h, err := hashFileXX(job.Input)
		if err != nil {
			return fourmc.Inputf("batch job", "%w", err)
		}
		inputHash = h

		cachePath := job.Output + ".4mchash"
		if shouldSkipJob(cachePath, job.Output, inputHash) {
			fmt.Fprintf(os.Stderr, "4mc: batch job unchanged, skipping: %s\n", job.Input)
			return nil
		}
	}

	in, err := os.Open(job.Input)
	if err != nil {
		return fourmc.Inputf("batch job", "open %q: %w", job.Input, err)
	}
	defer func() { _ = in.Close() }()

	if !job.Force {
		if _, err := os.Stat(job.Output); err == nil {
			return fourmc.Outputf("batch job", "output %q already exists (set force: true)", job.Output)
		}
	}

	out, err := os.Create(job.Output)
	if err != nil {
		return fourmc.Outputf("batch job", "create %q: %w", job.Output, err)
	}
	defer func() { _ = out.Close() }()

	ctx := context.Background()

	if job.Decompress {
		_, err := decoder.DecodeAll(ctx, in, out)
		return err
	}

	enc, err := encoder.New(out, variant, level)
	if err != nil {
		return err
	}
	defer enc.Close()

	if err := enc.Encode(ctx, in); err != nil {
		return err
	}

	if job.SkipUnchanged {
		if err := writeCacheHash(job.Output+".4mchash", inputHash); err != nil {
			return fourmc.Outputf("batch job", "%w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "4mc: batch job done: %s -> %s\n", job.Input, job.Output)
	return nil
}

func resolveRelative(baseDir, path string) string {
	if strings.TrimSpace(path) == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
