// Package shared provides utilities shared by the dashboard's components.
package shared

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/zjrosen/txdash/internal/log"
)

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard copies through the OS clipboard, or through the terminal
// with an OSC 52 sequence when running over SSH or when no OS clipboard is
// available.
type SystemClipboard struct {
	// Out receives OSC 52 sequences. Defaults to os.Stderr.
	Out io.Writer
}

// Copy copies text to the clipboard.
func (c SystemClipboard) Copy(text string) error {
	if shouldUseOSC52() {
		return c.copyOSC52(text)
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Debug(log.CatUI, "OS clipboard unavailable, using OSC 52", "error", err)
		return c.copyOSC52(text)
	}
	return nil
}

func (c SystemClipboard) copyOSC52(text string) error {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	_, err := osc52Sequence(text).WriteTo(out)
	return err
}

// osc52Sequence wraps text for the multiplexer in use, if any.
func osc52Sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case os.Getenv("STY") != "":
		seq = seq.Screen()
	}
	return seq
}

// shouldUseOSC52 reports whether the session is remote, where the OS
// clipboard belongs to the wrong machine.
func shouldUseOSC52() bool {
	for _, key := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// MemoryClipboard records copied text. Useful in tests.
type MemoryClipboard struct {
	Text  string
	Count int
	Err   error
}

// Copy stores text unless Err is set.
func (m *MemoryClipboard) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Count++
	return nil
}
