package calendar

import (
	"sort"
	"time"
)

// ScheduleEntry is one non-task line of the agenda with its display
// duration in minutes.
type ScheduleEntry struct {
	Item            Item
	DurationMinutes int
}

// DateGroup collects one calendar day's agenda entries, ascending by
// start.
type DateGroup struct {
	Date    time.Time
	Entries []ScheduleEntry
}

// ScheduleView is the flat agenda: a Tasks section first, then non-task
// items grouped by day, groups in ascending date order.
type ScheduleView struct {
	Tasks  []Item
	Groups []DateGroup
}

// BuildSchedule materializes the agenda over every item; schedule mode
// applies no range restriction.
func BuildSchedule(in Inputs) ScheduleView {
	pool := in.pool()
	sortByStart(pool)

	var view ScheduleView
	groups := make(map[time.Time]*DateGroup)
	var order []time.Time

	for _, it := range pool {
		if it.Kind == KindTask {
			view.Tasks = append(view.Tasks, it)
			continue
		}
		day := startOfDay(it.StartAt)
		g, ok := groups[day]
		if !ok {
			g = &DateGroup{Date: day}
			groups[day] = g
			order = append(order, day)
		}
		g.Entries = append(g.Entries, ScheduleEntry{
			Item:            it,
			DurationMinutes: it.DurationMinutes(),
		})
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })
	for _, day := range order {
		view.Groups = append(view.Groups, *groups[day])
	}

	return view
}
