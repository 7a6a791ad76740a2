//go:build windows

package cli

import "os"

// isTerminal always reports false on Windows: this module carries no
// Windows-specific console-mode detection, mirroring the teacher's own
// absence of Windows-specific code paths.
func isTerminal(f *os.File) bool { return false }
