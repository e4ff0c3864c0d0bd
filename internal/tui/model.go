// Package tui provides the Bubble Tea quiz interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/ddtrain/internal/quiz"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	boxStyle    = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

const title = "Doomsday trainer  (0=Sun 1=Mon 2=Tue 3=Wed 4=Thu 5=Fri 6=Sat)"

// Model implements the Bubble Tea quiz UI.
type Model struct {
	answers chan<- string
	input   textinput.Model

	transcript []string
	prompt     string
	asking     bool
	finished   bool
	err        error

	width  int
	height int
}

// NewModel constructs a quiz model that delivers submitted answers on answers.
func NewModel(answers chan<- string) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 8
	input.Placeholder = "0-6"
	return &Model{answers: answers, input: input}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case promptMsg:
		m.prompt = strings.TrimRight(msg.text, "\t")
		m.asking = true
		m.input.Reset()
		return m, m.input.Focus()
	case lineMsg:
		m.transcript = append(m.transcript, quiz.Highlight(msg.text))
		return m, nil
	case finishedMsg:
		m.finished = true
		m.asking = false
		m.err = msg.err
		m.input.Blur()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.finished {
			return m, tea.Quit
		}
		if !m.asking {
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			m.submit()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) submit() {
	answer := strings.TrimSpace(m.input.Value())
	m.transcript = append(m.transcript, promptStyle.Render(m.prompt)+"  "+answerStyle.Render(answer))
	m.asking = false
	m.prompt = ""
	m.input.Blur()
	select {
	case m.answers <- answer:
	default:
		// Only one prompt is pending at a time, so the slot is free.
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{titleStyle.Render(title), ""}
	lines = append(lines, m.transcript...)
	if m.asking {
		lines = append(lines, promptStyle.Render(m.prompt), m.input.View())
	}
	if m.err != nil {
		lines = append(lines, "", errorStyle.Render(m.err.Error()))
	}
	lines = append(lines, "", m.renderFooter())
	content := boxStyle.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderFooter() string {
	if m.finished {
		return footerStyle.Render("press any key to exit")
	}
	return footerStyle.Render("enter: answer  ctrl+c: quit")
}
