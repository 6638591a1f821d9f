package calendar

import "time"

const (
	// monthGridCells is the fixed 6x7 grid size: trailing days of the
	// previous month, the whole current month, leading days of the next.
	monthGridCells = 42

	// maxCellDots is how many indicator dots a cell shows before the
	// remainder collapses into a "+N" badge.
	maxCellDots = 3
)

// MonthCell is one slot in the month grid.
type MonthCell struct {
	Date         time.Time
	InMonth      bool
	Items        []Item
	Dots         []Item // at most maxCellDots, one per indicator dot
	Overflow     int    // items collapsed behind the "+N" badge
	HolidayGlyph string
	ItemGlyph    string
}

// MonthView is the render-ready month materialization: the 42-cell grid
// plus the selected date's full item list.
type MonthView struct {
	Year     int
	Month    time.Month
	Cells    []MonthCell // always monthGridCells long
	Selected []Item      // ascending by start
}

// BuildMonth materializes the month grid around the selected date.
func BuildMonth(in Inputs, selected time.Time) MonthView {
	pool := in.pool()
	idx := in.index()

	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location())
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	idx.preload(gridStart, endOfDay(gridStart.AddDate(0, 0, monthGridCells-1)))

	view := MonthView{
		Year:  selected.Year(),
		Month: selected.Month(),
		Cells: make([]MonthCell, 0, monthGridCells),
	}

	for i := 0; i < monthGridCells; i++ {
		date := gridStart.AddDate(0, 0, i)
		items := itemsOn(pool, date)
		items = append(items, in.classesOn(idx, date)...)

		cell := MonthCell{
			Date:         date,
			InMonth:      date.Month() == selected.Month() && date.Year() == selected.Year(),
			Items:        items,
			HolidayGlyph: HolidaySticker(date),
			ItemGlyph:    ItemSticker(items),
		}
		cell.Dots = items
		if len(items) > maxCellDots {
			cell.Dots = items[:maxCellDots]
			cell.Overflow = len(items) - maxCellDots
		}
		view.Cells = append(view.Cells, cell)
	}

	day := startOfDay(selected)
	sel := itemsOn(pool, day)
	sel = append(sel, in.classesOn(idx, day)...)
	sortByStart(sel)
	view.Selected = sel

	return view
}
