package calendar

import "time"

// ViewMode selects which of the four materializations to build.
type ViewMode int

const (
	ModeMonth ViewMode = iota
	ModeWeek
	ModeDay
	ModeSchedule
)

func (m ViewMode) String() string {
	switch m {
	case ModeWeek:
		return "week"
	case ModeDay:
		return "day"
	case ModeSchedule:
		return "schedule"
	default:
		return "month"
	}
}

// ModeFromName maps a configured view name to a ViewMode, defaulting to
// month for anything unrecognized.
func ModeFromName(name string) ViewMode {
	switch name {
	case "week":
		return ModeWeek
	case "day":
		return ModeDay
	case "schedule", "agenda":
		return ModeSchedule
	}
	return ModeMonth
}

// Range is an inclusive window of interest.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, inclusive at both
// ends.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// startOfWeek returns the Sunday on or before t, at local midnight.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t.AddDate(0, 0, -int(t.Weekday())))
}

// RangeFor computes the inclusive window for a reference date and view
// mode. The second return is false for schedule mode, which applies no
// range restriction.
func RangeFor(ref time.Time, mode ViewMode) (Range, bool) {
	switch mode {
	case ModeDay:
		return Range{Start: startOfDay(ref), End: endOfDay(ref)}, true
	case ModeWeek:
		start := startOfWeek(ref)
		return Range{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}, true
	case ModeMonth:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return Range{Start: first, End: endOfDay(first.AddDate(0, 1, -1))}, true
	}
	return Range{}, false
}

// SelectRange keeps items whose start instant falls inside the mode's
// window. Schedule mode keeps everything. The returned slice is always
// freshly allocated.
func SelectRange(items []Item, ref time.Time, mode ViewMode) (Range, []Item) {
	r, bounded := RangeFor(ref, mode)
	if !bounded {
		out := make([]Item, len(items))
		copy(out, items)
		return r, out
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if r.Contains(it.StartAt) {
			out = append(out, it)
		}
	}
	return r, out
}
