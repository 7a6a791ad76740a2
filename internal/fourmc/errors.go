// Package fourmc implements the 4mc/4mz splittable block container format:
// header, block frames, end marker and block-offset footer, shared between
// the LZ4 and Zstandard variants.
package fourmc

import "github.com/woozymasta/fourmc/internal/fourmc/ferr"

// Kind and Error are aliases onto the leaf ferr package's typed error
// model: internal/fourmc/codec constructs the same errors without
// depending on this package, and an error built by either one still
// satisfies *fourmc.Error type assertions at the CLI layer.
type Kind = ferr.Kind

const (
	KindUsage    = ferr.Usage
	KindInput    = ferr.Input
	KindOutput   = ferr.Output
	KindContent  = ferr.Content
	KindResource = ferr.Resource
)

type Error = ferr.Error

// Inputf builds a KindInput error.
func Inputf(op, format string, args ...any) *Error {
	return ferr.Inputf(op, format, args...)
}

// Outputf builds a KindOutput error.
func Outputf(op, format string, args ...any) *Error {
	return ferr.Outputf(op, format, args...)
}

// Contentf builds a KindContent error.
func Contentf(op, format string, args ...any) *Error {
	return ferr.Contentf(op, format, args...)
}

// Resourcef builds a KindResource error.
func Resourcef(op, format string, args ...any) *Error {
	return ferr.Resourcef(op, format, args...)
}
