package app

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	xansi "github.com/charmbracelet/x/ansi"

	"tstag/internal/timestamp"
)

var (
	rendererMu      sync.Mutex
	renderersByWide = map[int]*glamour.TermRenderer{}
)

func renderMarkdown(input string, width int) string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := getRenderer(width)
	if r == nil {
		return input
	}
	out, err := r.Render(input)
	if err != nil {
		return input
	}
	out = strings.TrimRight(out, "\n")
	out = xansi.Hardwrap(out, width, true)
	return strings.TrimRight(out, "\n")
}

func getRenderer(width int) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if renderer, ok := renderersByWide[width]; ok && renderer != nil {
		return renderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(buildStyleConfig()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderersByWide[width] = r
	return r
}

func buildStyleConfig() glamouransi.StyleConfig {
	base := styles.DarkStyleConfig
	// The overlay border supplies the spacing.
	base.Document.StylePrimitive.BlockPrefix = ""
	base.Document.StylePrimitive.BlockSuffix = ""
	zero := uint(0)
	base.Document.Margin = &zero
	return base
}

// helpMarkdown documents the keys and the style tokens in the catalog.
func helpMarkdown(keys keyMap) string {
	var b strings.Builder
	b.WriteString("# tstag\n\n")
	b.WriteString("Pick a date and time, then copy a tag. Chat clients render each tag in the reader's own timezone.\n\n")
	b.WriteString("## Styles\n\n")
	b.WriteString("| Name | Token | Example |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, rule := range timestamp.Catalog() {
		token := rule.Style.Suffix()
		if token == "" {
			token = "(none)"
		}
		b.WriteString("| " + rule.Name + " | " + token + " | `" + timestamp.Markup(0, rule.Style) + "` |\n")
	}
	b.WriteString("\n## Keys\n\n")
	for _, group := range keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString("- `" + h.Key + "` " + h.Desc + "\n")
		}
	}
	b.WriteString("\nThe picker takes `YYYY-MM-DDTHH:MM` in local time; leave it empty for now.\n")
	return b.String()
}
