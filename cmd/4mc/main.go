// Command 4mc compresses and decompresses the splittable 4mc/4mz block
// container format.
package main

import (
	"os"

	"github.com/woozymasta/fourmc/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
