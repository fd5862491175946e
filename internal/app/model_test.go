package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	xansi "github.com/charmbracelet/x/ansi"

	"tstag/internal/formatting"
	"tstag/internal/timestamp"
)

type fakeClipboard struct {
	mu     sync.Mutex
	copied []string
	err    error
}

func (f *fakeClipboard) Copy(_ context.Context, text string) (ClipboardMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.copied = append(f.copied, text)
	return ClipboardSystem, f.err
}

func (f *fakeClipboard) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.copied) == 0 {
		return ""
	}
	return f.copied[len(f.copied)-1]
}

var testNow = time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, clip ClipboardService) *Model {
	t.Helper()
	now := func() time.Time { return testNow }
	renderer := timestamp.NewRenderer(formatting.NewLocalFormatter(formatting.Layouts{}, time.UTC), now)
	m := NewModel(Options{
		Renderer:  renderer,
		Location:  time.UTC,
		Now:       now,
		Clipboard: clip,
		Initial:   "2024-01-15T12:00",
	})
	m.resize(160, 30)
	return m
}

// runCopy executes the copy command synchronously and feeds its result back.
func runCopy(t *testing.T, m *Model, cmd tea.Cmd) copyResultMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected copy command")
	}
	msg, ok := cmd().(copyResultMsg)
	if !ok {
		t.Fatalf("expected copyResultMsg")
	}
	m.Update(msg)
	return msg
}

func viewText(m *Model) string {
	return xansi.Strip(fmt.Sprint(m.View().Content))
}

func TestNewModelRendersInitialPicker(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	rows := m.Rows()
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	if rows[1].Markup != "<t:1705320000:F>" {
		t.Fatalf("unexpected long date/time markup: %q", rows[1].Markup)
	}
	if rows[6].Preview != "3 months ago" {
		t.Fatalf("unexpected relative preview: %q", rows[6].Preview)
	}
}

func TestNewModelDefaultsPickerToNow(t *testing.T) {
	loc := time.FixedZone("UTC+5:30", (5*60+30)*60)
	now := func() time.Time { return testNow.Add(42 * time.Second) }
	m := NewModel(Options{
		Renderer: timestamp.NewRenderer(formatting.NewLocalFormatter(formatting.Layouts{}, loc), now),
		Location: loc,
		Now:      now,
	})
	if got := m.picker.Value(); got != "2024-04-15T17:30" {
		t.Fatalf("expected picker in local wall-clock time, got %q", got)
	}
	diff := now().Sub(m.instant.Time(nil))
	if diff < 0 || diff >= time.Minute {
		t.Fatalf("expected picker instant within a minute of now, diff=%s", diff)
	}
}

func TestCopyKeyCopiesSelectedMarkup(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, clip)

	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	runCopy(t, m, cmd)

	if clip.last() != "<t:1705320000:F>" {
		t.Fatalf("expected long date/time markup copied, got %q", clip.last())
	}
	if m.acks[1].state != copyAckSuccess {
		t.Fatalf("expected success state on row 2, got %v", m.acks[1].state)
	}
	for i, ack := range m.acks {
		if i != 1 && ack.state != copyAckNeutral {
			t.Fatalf("expected row %d untouched, got %v", i+1, ack.state)
		}
	}
	plain := viewText(m)
	if !strings.Contains(plain, "[Copied!]") {
		t.Fatalf("expected copied button in view: %q", plain)
	}
}

func TestDigitKeyCopiesRowDirectly(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, clip)

	_, cmd := m.Update(tea.KeyPressMsg{Code: '7', Text: "7"})
	runCopy(t, m, cmd)

	if clip.last() != "<t:1705320000:R>" {
		t.Fatalf("expected relative markup copied, got %q", clip.last())
	}
	if m.selected != 6 {
		t.Fatalf("expected selection to follow copied row, got %d", m.selected)
	}
}

func TestCopyAckRevertsAfterWindow(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	result := runCopy(t, m, cmd)

	m.Update(copyAckResetMsg{generation: result.generation, row: 0, seq: m.acks[0].seq})
	if m.acks[0].state != copyAckNeutral {
		t.Fatalf("expected neutral state after window, got %v", m.acks[0].state)
	}
}

func TestSecondCopyRestartsWindow(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	runCopy(t, m, cmd)
	firstSeq := m.acks[0].seq

	_, cmd = m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	runCopy(t, m, cmd)
	secondSeq := m.acks[0].seq
	if secondSeq == firstSeq {
		t.Fatalf("expected second activation to replace pending reset")
	}

	m.Update(copyAckResetMsg{generation: m.generation, row: 0, seq: firstSeq})
	if m.acks[0].state != copyAckSuccess {
		t.Fatalf("expected stale reset to be ignored, got %v", m.acks[0].state)
	}
	m.Update(copyAckResetMsg{generation: m.generation, row: 0, seq: secondSeq})
	if m.acks[0].state != copyAckNeutral {
		t.Fatalf("expected latest reset to apply, got %v", m.acks[0].state)
	}
}

func TestRowsAcknowledgeIndependently(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})

	_, cmd := m.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	runCopy(t, m, cmd)
	_, cmd = m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	runCopy(t, m, cmd)

	m.Update(copyAckResetMsg{generation: m.generation, row: 0, seq: m.acks[0].seq})
	if m.acks[0].state != copyAckNeutral {
		t.Fatalf("expected row 1 reset, got %v", m.acks[0].state)
	}
	if m.acks[1].state != copyAckSuccess {
		t.Fatalf("expected row 2 still acknowledged, got %v", m.acks[1].state)
	}
}

func TestCopyFailureShowsFailureState(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	m := newTestModel(t, clip)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	runCopy(t, m, cmd)

	if m.acks[0].state != copyAckFailure {
		t.Fatalf("expected failure state, got %v", m.acks[0].state)
	}
	if m.toastLevel != toastLevelError || !strings.Contains(m.toastText, "no clipboard") {
		t.Fatalf("expected error toast, got level=%v text=%q", m.toastLevel, m.toastText)
	}
	if !strings.Contains(viewText(m), "[Failed]") {
		t.Fatalf("expected failed button in view")
	}
}

func TestCommitReplacesRowsAndDropsStaleAcks(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	result, ok := cmd().(copyResultMsg)
	if !ok {
		t.Fatalf("expected copyResultMsg")
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if m.focus != focusPicker {
		t.Fatalf("expected picker focus")
	}
	m.picker.SetValue("2024-01-16T12:00")
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.focus != focusTable {
		t.Fatalf("expected focus back on table after commit")
	}
	if got := m.Rows()[0].Markup; got != "<t:1705406400>" {
		t.Fatalf("expected rows for new date, got %q", got)
	}

	m.Update(result)
	if m.acks[0].state != copyAckNeutral {
		t.Fatalf("expected copy result from previous render to be ignored")
	}
}

func TestInvalidPickerValueDegrades(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	m.picker.SetValue("someday")
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	rows := m.Rows()
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Preview != formatting.InvalidDate {
			t.Fatalf("expected invalid preview, got %q", row.Preview)
		}
	}
}

func TestCtrlNResetsPickerToNow(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	if got := m.picker.Value(); got != "2024-04-15T12:00" {
		t.Fatalf("expected picker reset to now, got %q", got)
	}
	if got := m.Rows()[0].Markup; got != fmt.Sprintf("<t:%d>", testNow.Unix()) {
		t.Fatalf("expected rows for now, got %q", got)
	}
}

func TestMouseClickOnButtonCopiesRow(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, clip)
	layout := layoutTable(m.rows, m.width)

	cmd := m.handleMouseClick(tea.MouseClickMsg{
		Button: tea.MouseLeft,
		X:      layout.buttonColumn() + 1,
		Y:      tableTopLine + tableHeaderHeight + 4,
	})
	runCopy(t, m, cmd)
	if clip.last() != "<t:1705320000:d>" {
		t.Fatalf("expected short date markup copied, got %q", clip.last())
	}

	cmd = m.handleMouseClick(tea.MouseClickMsg{
		Button: tea.MouseLeft,
		X:      1,
		Y:      tableTopLine + tableHeaderHeight + 2,
	})
	if cmd != nil {
		t.Fatalf("expected click outside button to only select")
	}
	if m.selected != 2 {
		t.Fatalf("expected row 3 selected, got %d", m.selected)
	}
}

func TestViewListsEveryRow(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	plain := viewText(m)
	for _, row := range m.Rows() {
		if !strings.Contains(plain, row.Name) || !strings.Contains(plain, row.Markup) {
			t.Fatalf("expected row %q in view: %q", row.Name, plain)
		}
	}
	lines := strings.Split(plain, "\n")
	if !strings.Contains(lines[tableTopLine+tableHeaderHeight], "Short Date/Time") {
		t.Fatalf("expected first row at table offset, got %q", lines[tableTopLine+tableHeaderHeight])
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	m.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	if !m.showHelp {
		t.Fatalf("expected help overlay")
	}
	if !strings.Contains(viewText(m), "Relative Time") {
		t.Fatalf("expected style table in help overlay")
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEsc})
	if m.showHelp {
		t.Fatalf("expected help overlay to close")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatalf("expected quit command from table")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd = m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatalf("expected quit command from picker")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}
