package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

type toastLevel int

const (
	toastLevelInfo toastLevel = iota
	toastLevelError
)

type toastExpiredMsg struct {
	seq int
}

// showToast replaces the current toast. The returned command clears it after
// the copy feedback window unless another toast arrives first. The status
// line underneath is left alone.
func (m *Model) showToast(level toastLevel, message string) tea.Cmd {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}
	m.toastText = message
	m.toastLevel = level
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(m.feedback, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) clearToast(seq int) {
	if seq != m.toastSeq {
		return
	}
	m.toastText = ""
	m.toastLevel = toastLevelInfo
}

func (m *Model) toastLine(width int) string {
	if m.toastText == "" || width <= 0 {
		return ""
	}
	text := truncateToWidth(m.toastText, max(1, width-4))
	pill := m.toastStyle().Render(" " + text + " ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, pill)
}

func (m *Model) toastStyle() lipgloss.Style {
	switch m.toastLevel {
	case toastLevelError:
		return toastErrorStyle
	default:
		return toastInfoStyle
	}
}
