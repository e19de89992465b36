package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// Config holds the parsed command line.
type Config struct {
	InputPath string
}

// Parse parses the command line using pflag. Exactly one positional
// argument, the path to the Makefile to patch, is accepted.
func Parse(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("mkcipatch", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: mkcipatch <path-to-official-Makefile>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Reads the official Makefile, strips the checks that abort CI builds,")
		fmt.Fprintln(os.Stderr, "and writes the patched copy to Makefile.ci in the current directory.")
	}

	if err := flags.Parse(args); err != nil {
		// pflag already prints the error (or the help text).
		return nil, err
	}

	rest := flags.Args()
	if len(rest) != 1 {
		flags.Usage()
		return nil, fmt.Errorf("expected exactly one Makefile path, got %d argument(s)", len(rest))
	}

	return &Config{InputPath: rest[0]}, nil
}
