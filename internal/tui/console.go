package tui

import (
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/ddtrain/internal/quiz"
)

// ErrAborted is returned by Ask when the user leaves the program mid-prompt.
var ErrAborted = errors.New("quiz aborted")

type promptMsg struct {
	text string
}

type lineMsg struct {
	text string
}

type finishedMsg struct {
	err error
}

// Console bridges quiz.Console calls from the worker goroutine into the
// Bubble Tea program.
type Console struct {
	send    func(tea.Msg)
	answers <-chan string
	done    chan struct{}
	once    sync.Once
}

func newConsole(send func(tea.Msg), answers <-chan string) *Console {
	return &Console{
		send:    send,
		answers: answers,
		done:    make(chan struct{}),
	}
}

// Ask shows the prompt and blocks until the user submits an answer.
func (c *Console) Ask(prompt string) (string, error) {
	select {
	case <-c.done:
		return "", ErrAborted
	default:
	}
	c.send(promptMsg{text: prompt})
	select {
	case answer := <-c.answers:
		return answer, nil
	case <-c.done:
		return "", ErrAborted
	}
}

// Say appends a line to the transcript.
func (c *Console) Say(line string) error {
	select {
	case <-c.done:
		return ErrAborted
	default:
	}
	c.send(lineMsg{text: line})
	return nil
}

// Close is a no-op; the program owns the terminal.
func (c *Console) Close() error {
	return nil
}

func (c *Console) abort() {
	c.once.Do(func() {
		close(c.done)
	})
}

// Run starts the interactive UI and runs fn against it on a separate
// goroutine. It returns once both the UI and fn have finished.
func Run(fn func(quiz.Console) error, opts ...tea.ProgramOption) error {
	answers := make(chan string, 1)
	program := tea.NewProgram(NewModel(answers), opts...)
	console := newConsole(program.Send, answers)

	errCh := make(chan error, 1)
	go func() {
		err := fn(console)
		program.Send(finishedMsg{err: err})
		errCh <- err
	}()

	_, runErr := program.Run()
	console.abort()
	err := <-errCh
	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	return err
}
