package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

type ClipboardMethod uint8

const (
	ClipboardSystem ClipboardMethod = iota
	ClipboardOSC52
)

func (m ClipboardMethod) String() string {
	if m == ClipboardOSC52 {
		return "osc52"
	}
	return "system"
}

// ClipboardService writes text to wherever the user's paste will read it.
type ClipboardService interface {
	Copy(ctx context.Context, text string) (ClipboardMethod, error)
}

var clipboardWriteAll = clipboard.WriteAll
var clipboardWriteOSC52 = writeOSC52Clipboard
var openTTYForWrite = func() (io.WriteCloser, error) {
	return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
}

type defaultClipboardService struct {
	disableOSC52 bool
}

// NewClipboardService tries the system clipboard first and falls back to an
// OSC52 escape sequence when allowOSC52 is set.
func NewClipboardService(allowOSC52 bool) ClipboardService {
	return defaultClipboardService{disableOSC52: !allowOSC52}
}

func (s defaultClipboardService) Copy(ctx context.Context, text string) (ClipboardMethod, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	type result struct {
		method ClipboardMethod
		err    error
	}
	done := make(chan result, 1)
	go func() {
		method, err := copyTextToClipboard(text, !s.disableOSC52)
		done <- result{method: method, err: err}
	}()
	select {
	case <-ctx.Done():
		return ClipboardSystem, ctx.Err()
	case res := <-done:
		return res.method, res.err
	}
}

func copyTextToClipboard(text string, allowOSC52 bool) (ClipboardMethod, error) {
	err := clipboardWriteAll(text)
	if err == nil {
		return ClipboardSystem, nil
	}
	if !allowOSC52 {
		return ClipboardSystem, fmt.Errorf("system clipboard failed: %s", humanizeClipboardError(err))
	}
	oscErr := clipboardWriteOSC52(text)
	if oscErr == nil {
		return ClipboardOSC52, nil
	}
	return ClipboardSystem, combineClipboardErrors(err, oscErr)
}

func writeOSC52Clipboard(text string) error {
	if !shouldAttemptOSC52() {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := openTTYForWrite()
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeOSC52Sequence(tty, text)
}

func writeOSC52Sequence(w io.Writer, text string) error {
	termName := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	switch {
	case os.Getenv("TMUX") != "":
		// tmux only forwards the wrapped form when allow-passthrough is on,
		// and only the plain form when set-clipboard is on.
		if _, err := osc52.New(text).WriteTo(w); err != nil {
			return err
		}
		_, err := osc52.New(text).Tmux().WriteTo(w)
		return err
	case strings.HasPrefix(termName, "screen"):
		_, err := osc52.New(text).Screen().WriteTo(w)
		return err
	default:
		_, err := osc52.New(text).WriteTo(w)
		return err
	}
}

func shouldAttemptOSC52() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TSTAG_DISABLE_OSC52"))) {
	case "1", "true", "yes", "on":
		return false
	}
	termName := strings.TrimSpace(os.Getenv("TERM"))
	if termName == "" || strings.EqualFold(termName, "dumb") {
		return false
	}
	return true
}

func combineClipboardErrors(systemErr, oscErr error) error {
	oscMsg := humanizeClipboardError(oscErr)
	if missingDisplay() {
		return fmt.Errorf("no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset); OSC52 fallback failed: %s", oscMsg)
	}
	return fmt.Errorf("system clipboard failed: %s; OSC52 fallback failed: %s", humanizeClipboardError(systemErr), oscMsg)
}

func humanizeClipboardError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "exit status 1" {
		if missingDisplay() {
			return "no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset)"
		}
		return "clipboard helper exited with status 1"
	}
	return msg
}

func missingDisplay() bool {
	return strings.TrimSpace(os.Getenv("DISPLAY")) == "" && strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == ""
}
