//go:build !windows

package cli

import (
	"os"

	"golang.org/x/sys/unix"
)

// isTerminal reports whether f refers to a terminal device. The CLI surface
// uses this to reject an interactive terminal as binary stdin/stdout unless
// -c was explicitly given for stdout.
func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), ioctlGetTermios)
	return err == nil
}
