package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mgreer/quad/internal/calendar"
)

func (m *Model) viewMonth() string {
	view := calendar.BuildMonth(m.inputs(), m.selected)

	cellWidth := m.width / 7
	if cellWidth < 6 {
		cellWidth = 6
	}
	if cellWidth > 14 {
		cellWidth = 14
	}

	var lines []string
	title := fmt.Sprintf("%s %d", view.Month, view.Year)
	lines = append(lines, m.styles.Header.Render(title))

	var dayHeader strings.Builder
	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		dayHeader.WriteString(pad(name, cellWidth))
	}
	lines = append(lines, m.styles.Dim.Render(dayHeader.String()))

	today := time.Now()
	for row := 0; row < 6; row++ {
		var week strings.Builder
		for col := 0; col < 7; col++ {
			cell := view.Cells[row*7+col]
			week.WriteString(m.renderMonthCell(cell, cellWidth, today))
		}
		lines = append(lines, week.String())
	}

	lines = append(lines, "")
	lines = append(lines, m.renderSelectedDay(view.Selected))
	lines = append(lines, m.renderStatusBar(countMonthItems(view)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderMonthCell(cell calendar.MonthCell, width int, today time.Time) string {
	label := fmt.Sprintf("%2d", cell.Date.Day())
	if cell.HolidayGlyph != "" {
		label += cell.HolidayGlyph
	}
	if cell.ItemGlyph != "" {
		label += cell.ItemGlyph
	}
	if len(cell.Dots) > 0 {
		label += " " + strings.Repeat("•", len(cell.Dots))
	}
	if cell.Overflow > 0 {
		label += fmt.Sprintf("+%d", cell.Overflow)
	}

	label = pad(label, width)
	switch {
	case sameDay(cell.Date, m.selected):
		return m.styles.Selected.Render(label)
	case sameDay(cell.Date, today):
		return m.styles.Today.Render(label)
	case !cell.InMonth:
		return m.styles.Dim.Render(label)
	default:
		return m.styles.Normal.Render(label)
	}
}

func (m *Model) renderSelectedDay(items []calendar.Item) string {
	var lines []string
	lines = append(lines, m.styles.Header.Render(m.selected.Format(m.cfg.DateFormat)))

	if len(items) == 0 {
		lines = append(lines, m.styles.Help.Render("(nothing scheduled)"))
	}
	for _, it := range items {
		lines = append(lines, m.itemLine(it))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewWeek() string {
	view := calendar.BuildWeek(m.inputs(), m.selected)

	colWidth := (m.width - 6) / 7
	if colWidth < 8 {
		colWidth = 8
	}

	var lines []string
	title := fmt.Sprintf("Week of %s", view.Range.Start.Format(m.cfg.DateFormat))
	lines = append(lines, m.styles.Header.Render(title))

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", 6))
	for _, d := range view.Days {
		label := pad(d.Date.Format("Mon 2"), colWidth)
		if d.Active {
			header.WriteString(m.styles.Selected.Render(label))
		} else if sameDay(d.Date, time.Now()) {
			header.WriteString(m.styles.Today.Render(label))
		} else {
			header.WriteString(m.styles.Dim.Render(label))
		}
	}
	lines = append(lines, header.String())

	count := 0
	for _, hour := range view.Hours {
		empty := true
		for _, col := range hour.Columns {
			if len(col) > 0 {
				empty = false
			}
			count += len(col)
		}
		if empty {
			continue
		}

		var row strings.Builder
		row.WriteString(m.styles.Dim.Render(hourLabel(hour.Hour) + " "))
		for _, col := range hour.Columns {
			cellText := ""
			if len(col) == 1 {
				cellText = truncate(col[0].Title, colWidth-1)
			} else if len(col) > 1 {
				cellText = fmt.Sprintf("%s +%d", truncate(col[0].Title, colWidth-4), len(col)-1)
			}
			if len(col) > 0 {
				row.WriteString(m.styles.itemStyle(col[0]).Render(pad(cellText, colWidth)))
			} else {
				row.WriteString(strings.Repeat(" ", colWidth))
			}
		}
		lines = append(lines, row.String())
	}

	if count == 0 {
		lines = append(lines, m.styles.Help.Render("(nothing scheduled this week)"))
	}
	lines = append(lines, m.renderStatusBar(count))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewDay() string {
	view := calendar.BuildDay(m.inputs(), m.selected)

	var lines []string
	lines = append(lines, m.styles.Header.Render(view.Date.Format("Monday, "+m.cfg.DateFormat)))

	count := 0
	for _, hour := range view.Hours {
		if len(hour.Items) == 0 {
			lines = append(lines, m.styles.Dim.Render(hourLabel(hour.Hour)+" ─"))
			continue
		}
		for i, it := range hour.Items {
			prefix := hourLabel(hour.Hour) + " "
			if i > 0 {
				prefix = strings.Repeat(" ", 6)
			}
			lines = append(lines, m.styles.Dim.Render(prefix)+m.itemLine(it))
			count++
		}
	}

	lines = append(lines, m.renderStatusBar(count))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewSchedule() string {
	view := calendar.BuildSchedule(m.inputs())

	var lines []string
	lines = append(lines, m.styles.Header.Render("Schedule"))

	if len(view.Tasks) > 0 {
		lines = append(lines, m.styles.Header.Render("Tasks"))
		for _, it := range view.Tasks {
			lines = append(lines, m.itemLine(it))
		}
		lines = append(lines, "")
	}

	count := len(view.Tasks)
	for _, group := range view.Groups {
		lines = append(lines, m.styles.Header.Render(group.Date.Format("Monday, "+m.cfg.DateFormat)))
		for _, entry := range group.Entries {
			line := fmt.Sprintf("%s %s (%dm)",
				entry.Item.StartAt.Format(m.cfg.TimeFormat),
				entry.Item.Title,
				entry.DurationMinutes)
			if entry.Item.LocationName != "" {
				line += " @ " + entry.Item.LocationName
			}
			wrapped := wordwrap.String(line, maxLineWidth(m.width))
			lines = append(lines, m.styles.itemStyle(entry.Item).Render(wrapped))
			count++
		}
		lines = append(lines, "")
	}

	if count == 0 {
		lines = append(lines, m.styles.Help.Render("(nothing scheduled)"))
	}
	lines = append(lines, m.renderStatusBar(count))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// itemLine renders one item as "HH:MM title [Category]" with a task
// checkbox where relevant.
func (m *Model) itemLine(it calendar.Item) string {
	var b strings.Builder
	b.WriteString(it.StartAt.Format(m.cfg.TimeFormat))
	b.WriteString(" ")

	if it.Kind == calendar.KindTask {
		if it.Completed {
			b.WriteString("[x] ")
		} else {
			b.WriteString("[ ] ")
		}
	}

	b.WriteString(truncate(it.Title, maxLineWidth(m.width)))
	b.WriteString(" ")
	b.WriteString(m.styles.Dim.Render("[" + calendar.CategoryLabel(it) + "]"))

	return m.styles.itemStyle(it).Render(b.String())
}

func (m *Model) viewHelp() string {
	help := []string{
		m.styles.Header.Render("Quad Help"),
		"",
		m.styles.Normal.Render("Views:"),
		m.styles.Help.Render("  1       - Month"),
		m.styles.Help.Render("  2       - Week"),
		m.styles.Help.Render("  3       - Day"),
		m.styles.Help.Render("  4       - Schedule"),
		"",
		m.styles.Normal.Render("Navigation:"),
		m.styles.Help.Render("  h/←     - Previous day"),
		m.styles.Help.Render("  l/→     - Next day"),
		m.styles.Help.Render("  k/↑     - Previous week"),
		m.styles.Help.Render("  j/↓     - Next week"),
		m.styles.Help.Render("  </>     - Previous/next month"),
		m.styles.Help.Render("  t       - Today"),
		"",
		m.styles.Normal.Render("Filters:"),
		m.styles.Help.Render("  f       - Cycle type filter (all/events/tasks/classes)"),
		m.styles.Help.Render("  E/T/P   - Toggle events, tasks, personal"),
		m.styles.Help.Render("  O/C/S   - Toggle org, campus, social"),
		"",
		m.styles.Normal.Render("Actions:"),
		m.styles.Help.Render("  r       - Refresh"),
		m.styles.Help.Render("  ?       - Toggle help"),
		m.styles.Help.Render("  q       - Quit"),
		"",
		m.styles.Help.Render("Press any key to return..."),
	}

	return lipgloss.JoinVertical(lipgloss.Left, help...)
}

func (m *Model) renderStatusBar(count int) string {
	left := fmt.Sprintf(" %s | %s | Items: %d",
		m.selected.Format(m.cfg.DateFormat),
		m.mode, count)
	if m.filter.Type != calendar.TypeAll {
		left += " | Filter: " + string(m.filter.Type)
	}

	right := "? for help | q to quit"
	if m.message != "" {
		right = m.styles.Message.Render(m.message)
	}

	width := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if width < 0 {
		width = 0
	}
	middle := strings.Repeat(" ", width)

	return m.styles.Help.Render(left + middle + right)
}

func countMonthItems(view calendar.MonthView) int {
	count := 0
	for _, cell := range view.Cells {
		if cell.InMonth {
			count += len(cell.Items)
		}
	}
	return count
}

func hourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

func maxLineWidth(width int) int {
	w := width - 10
	if w < 20 {
		w = 20
	}
	return w
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
