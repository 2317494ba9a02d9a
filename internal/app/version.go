package app

import (
	"fmt"
	"io"
)

// Version is the application version, overridable at build time with
// -ldflags "-X .../internal/app.Version=v1.2.3".
var Version = "dev"

// PrintVersion writes the version line.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "bignum %s\n", Version)
}

// HasVersionFlag reports whether the arguments request version output,
// allowing main to short-circuit before full flag parsing.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}
