package main

import (
	"fmt"
	"os"
)

const usageText = `tstag generates chat timestamp tags for a date and time.

Usage:
  tstag <command> [flags]

Commands:
  ui       run the terminal UI
  render   print every tag for a date and time
  parse    decode a tag and print its variants
  config   print configuration (effective or defaults)
  help     show help

Flags:
  -h, --help   show help

Examples:
  tstag ui
  tstag ui --at 2024-01-15T12:00
  tstag render --at 2024-01-15T12:00 --format json
  tstag render --style R
  tstag parse '<t:1705320000:R>'
  tstag config --format toml
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
