package mkcipatch

import (
	"mkcipatch/cli"
	"mkcipatch/internal/fs"
	"mkcipatch/internal/patcher"
	"mkcipatch/model"
)

// App orchestrates one patch run.
type App struct {
	cfg *cli.Config
}

// New creates a new App instance.
func New(cfg *cli.Config) *App {
	return &App{cfg: cfg}
}

// Execute reads the input Makefile, applies the CI patches, and writes the
// result to Makefile.ci in the current working directory. Nothing is written
// when the input cannot be read.
func (a *App) Execute() (model.Summary, error) {
	lines, err := fs.ReadLines(a.cfg.InputPath)
	if err != nil {
		return model.Summary{}, err
	}

	patched, stats := patcher.Transform(lines)

	if err := fs.WriteLines(patcher.OutputName, patched); err != nil {
		return model.Summary{}, err
	}

	return model.Summary{
		GuardLinesDropped: stats.GuardLinesDropped,
		ErrorLinesDropped: stats.ErrorLinesDropped,
		InvocationsQuoted: stats.InvocationsQuoted,
		OutputPath:        patcher.OutputName,
	}, nil
}
