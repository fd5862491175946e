package app

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"tstag/internal/types"
)

const (
	columnGap         = 2
	minPreviewWidth   = 12
	copyButtonCells   = len("[Copied!]")
	indexColumnWidth  = 3
	tableHeaderHeight = 1
)

var columnTitles = [3]string{"Name", "Preview", "Markup"}

type tableLayout struct {
	name    int
	preview int
	markup  int
}

// layoutTable sizes the columns to their content, shrinking the preview
// column first when width is tight. width <= 0 means unbounded.
func layoutTable(rows []types.FormattedRow, width int) tableLayout {
	layout := tableLayout{
		name:    runewidth.StringWidth(columnTitles[0]),
		preview: runewidth.StringWidth(columnTitles[1]),
		markup:  runewidth.StringWidth(columnTitles[2]),
	}
	for _, row := range rows {
		layout.name = max(layout.name, runewidth.StringWidth(row.Name))
		layout.preview = max(layout.preview, runewidth.StringWidth(row.Preview))
		layout.markup = max(layout.markup, runewidth.StringWidth(row.Markup))
	}
	if width <= 0 {
		return layout
	}
	fixed := indexColumnWidth + layout.name + layout.markup + copyButtonCells + 3*columnGap
	if fixed+layout.preview > width {
		layout.preview = max(minPreviewWidth, width-fixed)
	}
	return layout
}

func (l tableLayout) header() string {
	gap := strings.Repeat(" ", columnGap)
	return strings.Repeat(" ", indexColumnWidth) +
		columnHeaderStyle.Render(padToWidth(columnTitles[0], l.name)) + gap +
		columnHeaderStyle.Render(padToWidth(columnTitles[1], l.preview)) + gap +
		columnHeaderStyle.Render(padToWidth(columnTitles[2], l.markup)) + gap
}

// row renders one line. Every cell is padded before it is styled so the
// widths stay exact.
func (l tableLayout) row(index int, row types.FormattedRow, ack copyAck, selected bool) string {
	gap := strings.Repeat(" ", columnGap)
	marker := padToWidth(strconv.Itoa(index+1)+".", indexColumnWidth)
	name := padToWidth(truncateToWidth(row.Name, l.name), l.name)
	preview := padToWidth(truncateToWidth(row.Preview, l.preview), l.preview)
	markup := padToWidth(row.Markup, l.markup)
	button := copyButtonStyleFor(ack.state).Render("[" + ack.label() + "]")

	base := rowStyle
	if selected {
		base = selectedStyle
	}
	return base.Render(marker+name+gap+preview+gap) + markupStyle.Render(markup) + gap + button
}

func (l tableLayout) buttonColumn() int {
	return indexColumnWidth + l.name + l.preview + l.markup + 3*columnGap
}
