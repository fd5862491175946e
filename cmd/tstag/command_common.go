package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"tstag/internal/types"
)

const (
	outputFormatTable = "table"
	outputFormatJSON  = "json"
)

func printRows(output io.Writer, rows []types.FormattedRow) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tPREVIEW\tMARKUP")
	for _, row := range rows {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", row.Name, row.Preview, row.Markup)
	}
	_ = writer.Flush()
}

func writeRows(output io.Writer, format string, rows []types.FormattedRow) error {
	switch format {
	case outputFormatJSON:
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	default:
		printRows(output, rows)
		return nil
	}
}

func writeRow(output io.Writer, row types.FormattedRow) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(row)
}

func resolveOutputFormat(raw string) (string, error) {
	switch raw {
	case "", outputFormatTable:
		return outputFormatTable, nil
	case outputFormatJSON:
		return outputFormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be table or json", raw)
	}
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}
