package main

import (
	"flag"
	"io"

	"tstag/internal/app"
	"tstag/internal/config"
	"tstag/internal/logging"
)

type uiLogOpener func(level logging.Level) (logging.Logger, io.Closer, error)

type UICommand struct {
	wiring commandWiring
}

func NewUICommand(wiring commandWiring) *UICommand {
	return &UICommand{wiring: wiring}
}

func (c *UICommand) Run(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.wiring.stderr)
	at := fs.String("at", "", "preset the picker (YYYY-MM-DDTHH:MM, local time)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.wiring.loadConfig()
	if err != nil {
		return err
	}

	logger := logging.Nop()
	if c.wiring.openUILog != nil {
		fileLogger, closer, err := c.wiring.openUILog(logging.ParseLevel(cfg.LogLevel()))
		if err == nil {
			defer closer.Close()
			logger = fileLogger
		}
	}
	logger.Info("ui starting", logging.F("at", *at))

	return c.wiring.runUI(app.Options{
		Renderer:  newRenderer(cfg, c.wiring.location, c.wiring.now),
		Location:  c.wiring.location,
		Now:       c.wiring.now,
		Clipboard: app.NewClipboardService(cfg.OSC52Enabled()),
		Logger:    logger,
		Feedback:  cfg.CopyFeedback(),
		Initial:   *at,
	})
}

// openUILog sends UI logs to a file so they never draw over the screen.
func openUILog(level logging.Level) (logging.Logger, io.Closer, error) {
	path, err := config.UILogPath()
	if err != nil {
		return nil, nil, err
	}
	return logging.OpenFile(path, level)
}
