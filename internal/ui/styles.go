package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mgreer/quad/internal/calendar"
)

type Styles struct {
	Normal    lipgloss.Style
	Dim       lipgloss.Style
	Selected  lipgloss.Style
	Today     lipgloss.Style
	Header    lipgloss.Style
	Event     lipgloss.Style
	Task      lipgloss.Style
	Class     lipgloss.Style
	Completed lipgloss.Style
	Help      lipgloss.Style
	Message   lipgloss.Style
	Border    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Bold(true),
		Today: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Underline(true),
		Event: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")),
		Task: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Class: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		Completed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
	}
}

// itemStyle picks the render style for one item.
func (s Styles) itemStyle(it calendar.Item) lipgloss.Style {
	if it.Completed {
		return s.Completed
	}
	switch it.Kind {
	case calendar.KindTask:
		return s.Task
	case calendar.KindClass:
		return s.Class
	default:
		return s.Event
	}
}
