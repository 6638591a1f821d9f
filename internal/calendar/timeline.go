package calendar

import "time"

const hoursPerDay = 24

// WeekDay is one column header of the week view.
type WeekDay struct {
	Date   time.Time
	Active bool // true for the selected date's column
}

// WeekHour is one row of the week timeline: the items starting in this
// hour, split across the seven day columns.
type WeekHour struct {
	Hour    int
	Columns [7][]Item
}

// WeekView is the render-ready week materialization: a 7-day header over
// a 24-row hour timeline.
type WeekView struct {
	Range Range
	Days  [7]WeekDay
	Hours [hoursPerDay]WeekHour
}

// BuildWeek materializes the Sunday-first week containing the selected
// date. Class occurrences are expanded for every visible date.
func BuildWeek(in Inputs, selected time.Time) WeekView {
	pool := in.pool()
	idx := in.index()

	r, _ := RangeFor(selected, ModeWeek)
	idx.preload(r.Start, r.End)

	var view WeekView
	view.Range = r
	for h := range view.Hours {
		view.Hours[h].Hour = h
	}

	_, inRange := SelectRange(pool, selected, ModeWeek)
	for col := range view.Days {
		date := r.Start.AddDate(0, 0, col)
		view.Days[col] = WeekDay{Date: date, Active: sameDay(date, selected)}

		dayItems := itemsOn(inRange, date)
		dayItems = append(dayItems, in.classesOn(idx, date)...)
		for _, it := range dayItems {
			h := it.StartAt.Hour()
			view.Hours[h].Columns[col] = append(view.Hours[h].Columns[col], it)
		}
	}

	return view
}

// DayHour is one row of the single-day timeline. A row with no items
// renders as a plain divider line.
type DayHour struct {
	Hour  int
	Items []Item
}

// DayView is the render-ready single-day materialization.
type DayView struct {
	Date  time.Time
	Hours [hoursPerDay]DayHour
}

// BuildDay materializes the 24-hour timeline for the selected date.
func BuildDay(in Inputs, selected time.Time) DayView {
	pool := in.pool()
	idx := in.index()

	day := startOfDay(selected)
	items := itemsOn(pool, day)
	items = append(items, in.classesOn(idx, day)...)
	sortByStart(items)

	view := DayView{Date: day}
	for h := range view.Hours {
		view.Hours[h].Hour = h
	}
	for _, it := range items {
		h := it.StartAt.Hour()
		view.Hours[h].Items = append(view.Hours[h].Items, it)
	}

	return view
}
