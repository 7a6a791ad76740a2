// Package vars holds build metadata injected via -ldflags.
package vars

import "fmt"

var (
	// Version is the tool version, set via -ldflags at build time.
	Version = "dev"
	// Commit is the git commit hash, set via -ldflags at build time.
	Commit = "none"
	// Date is the build date, set via -ldflags at build time.
	Date = "unknown"
)

// Print writes build metadata and the supported codec/level table to stdout.
func Print() {
	fmt.Printf("4mc %s (commit %s, built %s)\n", Version, Commit, Date)
	fmt.Println("variants: lz4 (magic 0x344D4300), zstd (magic 0x344D5A00)")
	fmt.Println("levels:   1=fast 2=medium 3=high 4=ultra")
}
