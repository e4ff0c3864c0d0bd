package quiz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	sorryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// Highlight colors feedback lines by outcome and leaves other lines untouched.
func Highlight(line string) string {
	switch {
	case strings.HasPrefix(line, "Correct!"):
		return correctStyle.Render(line)
	case strings.HasPrefix(line, "Sorry"):
		return sorryStyle.Render(line)
	case strings.HasPrefix(line, "Closest doomsday"):
		return hintStyle.Render(line)
	default:
		return line
	}
}
