package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"tstag/internal/timestamp"
)

type ParseCommand struct {
	wiring commandWiring
}

func NewParseCommand(wiring commandWiring) *ParseCommand {
	return &ParseCommand{wiring: wiring}
}

func (c *ParseCommand) Run(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(c.wiring.stderr)
	format := fs.String("format", outputFormatTable, "output format: table|json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: tstag parse [--format table|json] '<t:SECONDS[:STYLE]>'")
	}
	resolvedFormat, err := resolveOutputFormat(*format)
	if err != nil {
		return err
	}
	instant, style, err := timestamp.ParseMarkup(fs.Arg(0))
	if err != nil {
		return err
	}

	cfg, err := c.wiring.loadConfig()
	if err != nil {
		return err
	}
	rows := newRenderer(cfg, c.wiring.location, c.wiring.now).Render(instant)
	if resolvedFormat == outputFormatTable {
		fmt.Fprintf(c.wiring.stdout, "instant: %s (epoch %d)\nstyle:   %s\n\n",
			instant.Time(c.wiring.location).Format(time.RFC3339), instant.Unix(), style)
	}
	return writeRows(c.wiring.stdout, resolvedFormat, rows)
}
