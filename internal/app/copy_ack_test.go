package app

import (
	"testing"
	"time"
)

func TestCopyAckResetOnlyForLatestSeq(t *testing.T) {
	var ack copyAck
	if cmd := ack.acknowledge(true, 1, 0, time.Millisecond); cmd == nil {
		t.Fatalf("expected reset command")
	}
	first := ack.seq
	ack.acknowledge(false, 1, 0, time.Millisecond)
	if ack.state != copyAckFailure {
		t.Fatalf("expected failure state, got %v", ack.state)
	}
	if ack.reset(first) {
		t.Fatalf("expected stale reset to be ignored")
	}
	if !ack.reset(ack.seq) {
		t.Fatalf("expected latest reset to apply")
	}
	if ack.state != copyAckNeutral || ack.label() != "Copy" {
		t.Fatalf("expected neutral state, got %v %q", ack.state, ack.label())
	}
	if ack.reset(ack.seq) {
		t.Fatalf("expected repeated reset to be a no-op")
	}
}

func TestCopyAckResetMessageCarriesIdentity(t *testing.T) {
	var ack copyAck
	cmd := ack.acknowledge(true, 7, 3, time.Millisecond)
	msg, ok := cmd().(copyAckResetMsg)
	if !ok {
		t.Fatalf("expected copyAckResetMsg")
	}
	if msg.generation != 7 || msg.row != 3 || msg.seq != ack.seq {
		t.Fatalf("unexpected reset message: %+v", msg)
	}
}

func TestCopyAckLabels(t *testing.T) {
	cases := map[copyAckState]string{
		copyAckNeutral: "Copy",
		copyAckSuccess: "Copied!",
		copyAckFailure: "Failed",
	}
	for state, want := range cases {
		if got := (copyAck{state: state}).label(); got != want {
			t.Fatalf("state %v: expected %q, got %q", state, want, got)
		}
	}
}
