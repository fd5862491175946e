package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

const headerText = "Timestamp tags"

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m *Model) render() string {
	width := m.width
	lines := make([]string, 0, tableTopLine+len(m.rows)+4)
	lines = append(lines, headerStyle.Render(headerText))
	lines = append(lines, "")
	lines = append(lines, m.pickerLine())
	lines = append(lines, "")

	if m.showHelp {
		body := renderMarkdown(helpMarkdown(m.keys), max(20, width-4))
		lines = append(lines, helpOverlayStyle.Render(body))
		return strings.Join(lines, "\n")
	}

	layout := layoutTable(m.rows, width)
	lines = append(lines, layout.header())
	for i, row := range m.rows {
		lines = append(lines, layout.row(i, row, m.acks[i], m.focus == focusTable && i == m.selected))
	}
	lines = append(lines, "")
	if toast := m.toastLine(width); toast != "" {
		lines = append(lines, toast)
	} else {
		lines = append(lines, statusStyle.Render(m.status))
	}
	if width > 0 {
		lines = append(lines, dividerStyle.Render(strings.Repeat("─", width)))
	}
	lines = append(lines, helpStyle.Render(m.help.View(m.keys)))
	return strings.Join(lines, "\n")
}

func (m *Model) pickerLine() string {
	label := pickerLabelStyle.Render("Date/Time ")
	if m.focus == focusPicker {
		label = pickerFocusStyle.Render("Date/Time ")
	}
	return label + m.picker.View()
}
