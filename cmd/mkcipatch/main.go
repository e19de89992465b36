package main

import (
	"errors"
	"os"

	"mkcipatch/cli"
	"mkcipatch/internal/ui"
	"mkcipatch/mkcipatch"

	"github.com/spf13/pflag"
)

func main() {
	cfg, err := cli.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		ui.Error("%v", err)
		os.Exit(1)
	}

	app := mkcipatch.New(cfg)
	summary, err := app.Execute()
	if err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}

	ui.Success("Patched Makefile written to %s", summary.OutputPath)
}
