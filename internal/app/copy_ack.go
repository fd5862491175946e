package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

const defaultCopyFeedback = 2 * time.Second

type copyAckState int

const (
	copyAckNeutral copyAckState = iota
	copyAckSuccess
	copyAckFailure
)

// copyAck is the acknowledgment state owned by one displayed row. seq
// identifies the pending reset; bumping it orphans any earlier one.
type copyAck struct {
	state copyAckState
	seq   int
}

type copyAckResetMsg struct {
	generation int
	row        int
	seq        int
}

// acknowledge records the outcome of a copy and returns the reset to
// schedule. Only the latest reset for a row is honored.
func (a *copyAck) acknowledge(ok bool, generation, row int, window time.Duration) tea.Cmd {
	if ok {
		a.state = copyAckSuccess
	} else {
		a.state = copyAckFailure
	}
	a.seq++
	msg := copyAckResetMsg{generation: generation, row: row, seq: a.seq}
	return tea.Tick(window, func(time.Time) tea.Msg {
		return msg
	})
}

// reset reverts to neutral when seq is still the pending one.
func (a *copyAck) reset(seq int) bool {
	if a.seq != seq || a.state == copyAckNeutral {
		return false
	}
	a.state = copyAckNeutral
	return true
}

func (a copyAck) label() string {
	switch a.state {
	case copyAckSuccess:
		return "Copied!"
	case copyAckFailure:
		return "Failed"
	default:
		return "Copy"
	}
}
