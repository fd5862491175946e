package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"tstag/internal/timestamp"
	"tstag/internal/types"
)

type RenderCommand struct {
	wiring commandWiring
}

func NewRenderCommand(wiring commandWiring) *RenderCommand {
	return &RenderCommand{wiring: wiring}
}

func (c *RenderCommand) Run(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(c.wiring.stderr)
	at := fs.String("at", "", "date and time (YYYY-MM-DDTHH:MM local, or RFC 3339); empty means now")
	styleFlag := fs.String("style", "", "print only this style (tag, or the row with --format json): default|F|t|T|d|D|R")
	format := fs.String("format", outputFormatTable, "output format: table|json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return errors.New("unexpected arguments: " + strings.Join(fs.Args(), " "))
	}
	resolvedFormat, err := resolveOutputFormat(*format)
	if err != nil {
		return err
	}

	cfg, err := c.wiring.loadConfig()
	if err != nil {
		return err
	}
	instant := timestamp.ParsePicker(*at, c.wiring.now(), c.wiring.location)
	renderer := newRenderer(cfg, c.wiring.location, c.wiring.now)

	if flagWasSet(fs, "style") {
		style, err := resolveStyle(*styleFlag)
		if err != nil {
			return err
		}
		row, ok := renderer.RenderStyle(instant, style)
		if !ok {
			return fmt.Errorf("%w: %q", timestamp.ErrInvalidStyle, *styleFlag)
		}
		if resolvedFormat == outputFormatJSON {
			return writeRow(c.wiring.stdout, row)
		}
		_, err = fmt.Fprintln(c.wiring.stdout, row.Markup)
		return err
	}

	return writeRows(c.wiring.stdout, resolvedFormat, renderer.Render(instant))
}

func resolveStyle(raw string) (types.Style, error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "default") || strings.EqualFold(raw, "none") {
		return types.StyleNone, nil
	}
	style, ok := types.ParseStyle(raw)
	if !ok {
		return types.StyleNone, fmt.Errorf("%w: %q", timestamp.ErrInvalidStyle, raw)
	}
	return style, nil
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
