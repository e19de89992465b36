package mkcipatch

import (
	"mkcipatch/cli"
	"mkcipatch/model"
)

// Patch applies the CI patches to the Makefile at path and writes the result
// to Makefile.ci in the current working directory. It is the library
// equivalent of running the mkcipatch command.
func Patch(path string) (model.Summary, error) {
	app := New(&cli.Config{InputPath: path})
	return app.Execute()
}
