package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"tstag/internal/logging"
	"tstag/internal/timestamp"
	"tstag/internal/types"
)

const (
	clipboardTimeout = 3 * time.Second
	pickerCharLimit  = 32
	// header, blank, picker, blank; the column titles follow
	tableTopLine = 4
)

type focusArea int

const (
	focusTable focusArea = iota
	focusPicker
)

type Options struct {
	Renderer  *timestamp.Renderer
	Location  *time.Location
	Now       func() time.Time
	Clipboard ClipboardService
	Logger    logging.Logger
	// Feedback is how long a copy acknowledgment stays visible.
	Feedback time.Duration
	// Initial presets the picker. Empty means now.
	Initial string
}

type Model struct {
	renderer  *timestamp.Renderer
	location  *time.Location
	now       func() time.Time
	clipboard ClipboardService
	logger    logging.Logger
	feedback  time.Duration

	keys   keyMap
	help   help.Model
	picker textinput.Model
	focus  focusArea

	instant    types.Instant
	rows       []types.FormattedRow
	acks       []copyAck
	generation int
	selected   int
	showHelp   bool

	width  int
	height int

	status     string
	toastText  string
	toastLevel toastLevel
	toastSeq   int
}

func NewModel(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Clipboard == nil {
		opts.Clipboard = NewClipboardService(true)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Feedback <= 0 {
		opts.Feedback = defaultCopyFeedback
	}

	picker := textinput.New()
	picker.Prompt = ""
	picker.Placeholder = timestamp.PickerLayout
	picker.CharLimit = pickerCharLimit

	m := &Model{
		renderer:  opts.Renderer,
		location:  opts.Location,
		now:       opts.Now,
		clipboard: opts.Clipboard,
		logger:    opts.Logger,
		feedback:  opts.Feedback,
		keys:      defaultKeyMap(),
		help:      help.New(),
		picker:    picker,
		focus:     focusTable,
	}
	if strings.TrimSpace(opts.Initial) != "" {
		m.picker.SetValue(strings.TrimSpace(opts.Initial))
	} else {
		m.setPickerNow()
	}
	m.regenerate()
	return m
}

// Run starts the full-screen program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Rows returns the rows currently on screen.
func (m *Model) Rows() []types.FormattedRow {
	return append([]types.FormattedRow(nil), m.rows...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case copyResultMsg:
		return m, m.handleCopyResult(msg)
	case copyAckResetMsg:
		if msg.generation == m.generation && msg.row >= 0 && msg.row < len(m.acks) {
			m.acks[msg.row].reset(msg.seq)
		}
		return m, nil
	case toastExpiredMsg:
		m.clearToast(msg.seq)
		return m, nil
	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	if m.focus == focusPicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Focus):
		return m, m.toggleFocus()
	case key.Matches(msg, m.keys.Now):
		m.setPickerNow()
		m.regenerate()
		return m, nil
	}
	if m.focus == focusPicker {
		if key.Matches(msg, m.keys.Commit) {
			m.regenerate()
			m.focus = focusTable
			m.picker.Blur()
			return m, nil
		}
		if msg.String() == "esc" {
			m.focus = focusTable
			m.picker.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyRow(m.selected)
	case key.Matches(msg, m.keys.CopyIndex):
		index, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		m.selected = index - 1
		return m, m.copyRow(index - 1)
	}
	return m, nil
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusPicker {
		m.focus = focusTable
		m.picker.Blur()
		return nil
	}
	m.focus = focusPicker
	return m.picker.Focus()
}

func (m *Model) moveSelection(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.selected = (m.selected + delta + len(m.rows)) % len(m.rows)
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if m.showHelp {
		return nil
	}
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	index := mouse.Y - tableTopLine - tableHeaderHeight
	if index < 0 || index >= len(m.rows) {
		return nil
	}
	m.selected = index
	if mouse.X < layoutTable(m.rows, m.width).buttonColumn() {
		return nil
	}
	return m.copyRow(index)
}

// setPickerNow writes the current wall-clock minute into the picker.
func (m *Model) setPickerNow() {
	m.picker.SetValue(timestamp.FormatPicker(m.now(), m.location))
}

// regenerate re-reads the picker and replaces every row. Acknowledgments
// belong to the rows they were shown on, so they are discarded too.
func (m *Model) regenerate() {
	m.instant = timestamp.ParsePicker(m.picker.Value(), m.now(), m.location)
	if m.renderer == nil {
		m.rows = nil
	} else {
		m.rows = m.renderer.Render(m.instant)
	}
	m.acks = make([]copyAck, len(m.rows))
	m.generation++
	if m.selected >= len(m.rows) {
		m.selected = 0
	}
	if !m.instant.Valid() {
		m.status = "unrecognized date; expected " + timestamp.PickerLayout
		return
	}
	m.status = fmt.Sprintf("epoch %d", m.instant.Unix())
}

func (m *Model) copyRow(index int) tea.Cmd {
	if index < 0 || index >= len(m.rows) {
		return nil
	}
	markup := m.rows[index].Markup
	generation := m.generation
	service := m.clipboard
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clipboardTimeout)
		defer cancel()
		method, err := service.Copy(ctx, markup)
		return copyResultMsg{generation: generation, row: index, markup: markup, method: method, err: err}
	}
}

func (m *Model) handleCopyResult(msg copyResultMsg) tea.Cmd {
	if msg.generation != m.generation || msg.row < 0 || msg.row >= len(m.acks) {
		return nil
	}
	ok := msg.err == nil
	reset := m.acks[msg.row].acknowledge(ok, msg.generation, msg.row, m.feedback)
	if !ok {
		m.logger.Warn("clipboard write failed",
			logging.F("row", msg.row+1),
			logging.F("markup", msg.markup),
			logging.F("err", msg.err),
		)
		return tea.Batch(reset, m.showToast(toastLevelError, "copy failed: "+msg.err.Error()))
	}
	m.logger.Debug("copied markup",
		logging.F("row", msg.row+1),
		logging.F("markup", msg.markup),
		logging.F("method", msg.method),
	)
	return tea.Batch(reset, m.showToast(toastLevelInfo, "copied "+msg.markup))
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
}
