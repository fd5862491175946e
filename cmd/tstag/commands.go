package main

import (
	"io"
	"os"
	"time"

	"tstag/internal/app"
	"tstag/internal/config"
	"tstag/internal/formatting"
	"tstag/internal/timestamp"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
	now        func() time.Time
	location   *time.Location
	runUI      func(app.Options) error
	openUILog  uiLogOpener
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: config.Load,
		now:        time.Now,
		location:   time.Local,
		runUI:      app.Run,
		openUILog:  openUILog,
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ui":     NewUICommand(wiring),
		"render": NewRenderCommand(wiring),
		"parse":  NewParseCommand(wiring),
		"config": NewConfigCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
	}
}

func newRenderer(cfg config.Config, loc *time.Location, now func() time.Time) *timestamp.Renderer {
	return timestamp.NewRenderer(formatting.NewLocalFormatter(cfg.Layouts(), loc), now)
}
