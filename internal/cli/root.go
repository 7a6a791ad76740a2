// Package cli implements the command-line front-end for 4mc: flag parsing,
// filename-extension heuristics, the interactive overwrite prompt, and the
// exit-code mapping from the core's typed errors. Run returns the exit code;
// cmd/4mc passes it to os.Exit.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/woozymasta/fourmc/internal/fourmc"
	"github.com/woozymasta/fourmc/internal/vars"
)

// Root defines the default (no-subcommand) behavior: compress or
// decompress a single input to a single output, the flag surface the
// original 4mc command-line tool exposes.
type Root struct {
	Zstd bool `short:"z" long:"zstd" description:"use the Zstandard codec (default: LZ4)"`

	Level1 bool `short:"1" description:"fast compression (default)"`
	Level2 bool `short:"2" description:"medium compression"`
	Level3 bool `short:"3" description:"high compression"`
	Level4 bool `short:"4" description:"ultra compression"`

	Decompress bool   `short:"d" long:"decompress" description:"decompress"`
	Force      bool   `short:"f" long:"force" description:"overwrite output without prompting"`
	Stdout     bool   `short:"c" long:"stdout" description:"force output to stdout"`
	Test       bool   `short:"t" long:"test" description:"test: decompress to a null sink"`
	Verbose    []bool `short:"v" long:"verbose" description:"increase verbosity (repeatable)"`
	Quiet      bool   `short:"q" long:"quiet" description:"quieter output"`
	VersionFl  bool   `short:"V" long:"version" description:"print version and exit"`
	HelpAlt    bool   `short:"H" description:"show help (alias for --help)"`

	Args struct {
		Input  string `positional-arg-name:"input" description:"input file, or - for stdin"`
		Output string `positional-arg-name:"output" description:"output file, or - for stdout"`
	} `positional-args:"yes"`
}

// Run parses arguments and executes the selected command, translating the
// core's typed errors into the exit codes the external interface defines:
// 0 success, 1 usage, 2 input, 3 output, 4 content-invalid. It returns the
// code rather than exiting; cmd/4mc's main is the module's only os.Exit
// call, in place of the original's exit()-from-deep-inside model.
func Run(args []string) int {
	var root Root

	parser := flags.NewParser(&root, flags.Default)
	parser.Name = filepath.Base(os.Args[0])

	if _, err := parser.AddCommand(
		"batch",
		"Run multiple compress/decompress jobs from a YAML config file",
		"Run a list of 4mc jobs described in a YAML file.",
		&CmdBatch{},
	); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fourmc.KindUsage.Code()
	}

	if _, err := parser.ParseArgs(args); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return 0
		}
		// A subcommand's Execute (e.g. CmdBatch.run) surfaces here too,
		// already typed via fourmc.Error when it originated in the core.
		return reportAndCode(err)
	}

	if root.HelpAlt {
		parser.WriteHelp(os.Stdout)
		return 0
	}
	if root.VersionFl {
		vars.Print()
		return 0
	}

	if parser.Active != nil && parser.Active.Name == "batch" {
		return 0 // CmdBatch.Execute already ran; a failure would have returned above.
	}

	if err := runMain(&root); err != nil {
		return reportAndCode(err)
	}
	return 0
}

// reportAndCode prints err and maps it to an exit code via fourmc.Error's
// Kind, defaulting to a generic usage failure for untyped errors.
func reportAndCode(err error) int {
	fmt.Fprintf(os.Stderr, "%v\n", err)

	if ferr, ok := err.(*fourmc.Error); ok {
		return ferr.Kind.Code()
	}
	return fourmc.KindUsage.Code()
}
