// Package quiz runs doomsday rule quiz rounds and sessions.
package quiz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrClosed is returned by a console used after Close.
var ErrClosed = errors.New("console closed")

// Console is a line-oriented prompt/response channel. At most one Ask is
// pending at any time.
type Console interface {
	Ask(prompt string) (string, error)
	Say(line string) error
	Close() error
}

// LineConsole implements Console over a reader and writer.
type LineConsole struct {
	in        *bufio.Reader
	out       io.Writer
	highlight func(string) string
	closed    bool
}

// NewLineConsole reads answers from in and writes prompts and feedback to out.
func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	return &LineConsole{in: bufio.NewReader(in), out: out}
}

// SetHighlight installs a decorator applied to every line passed to Say.
func (c *LineConsole) SetHighlight(fn func(string) string) {
	c.highlight = fn
}

// Ask writes the prompt without a trailing newline and waits for one line.
func (c *LineConsole) Ask(prompt string) (string, error) {
	if c.closed {
		return "", ErrClosed
	}
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", fmt.Errorf("failed to read answer: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Say writes a single line.
func (c *LineConsole) Say(line string) error {
	if c.closed {
		return ErrClosed
	}
	if c.highlight != nil {
		line = c.highlight(line)
	}
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Close releases the console. Further calls are no-ops.
func (c *LineConsole) Close() error {
	c.closed = true
	return nil
}
