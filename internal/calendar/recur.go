package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// ClassSection is a recurring class meeting as supplied by a schedule
// feed. DayOfWeek is deliberately loose: upstream data is inconsistent
// and sends either a 0-6 Sunday-first index or a weekday name.
type ClassSection struct {
	SectionID    string
	Title        string
	DayOfWeek    string
	StartTime    string // HH:MM wall clock
	EndTime      string // HH:MM wall clock
	LocationName string
	Active       *TermRange // nil means the default term bounds apply
}

// TermRange bounds the dates on which a section actually meets.
type TermRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls inside the range, inclusive.
func (t TermRange) Contains(date time.Time) bool {
	return !date.Before(t.Start) && !date.After(t.End)
}

// TermBounds is the month/day fallback applied when a section carries no
// explicit active range. The zero value means the stock spring term.
type TermBounds struct {
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// DefaultTermBounds is the stock spring-term window, Jan 20 through
// May 10 of the queried year.
func DefaultTermBounds() TermBounds {
	return TermBounds{
		StartMonth: time.January,
		StartDay:   20,
		EndMonth:   time.May,
		EndDay:     10,
	}
}

func (b TermBounds) orDefault() TermBounds {
	if b.StartMonth == 0 || b.EndMonth == 0 {
		return DefaultTermBounds()
	}
	return b
}

// ForYear materializes the bounds for a concrete year, midnight on the
// first day through the last second of the final day.
func (b TermBounds) ForYear(year int, loc *time.Location) TermRange {
	b = b.orDefault()
	if loc == nil {
		loc = time.Local
	}
	return TermRange{
		Start: time.Date(year, b.StartMonth, b.StartDay, 0, 0, 0, 0, loc),
		End:   time.Date(year, b.EndMonth, b.EndDay, 23, 59, 59, 0, loc),
	}
}

// weekdayTokens covers the spellings seen in imported schedules: full
// names, common abbreviations, and the single-letter column codes used
// by registrar exports (R is Thursday).
var weekdayTokens = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"su":        time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"m":         time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"t":         time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"w":         time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"r":         time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"f":         time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
	"s":         time.Saturday,
}

// ParseWeekday maps either encoding of a weekday, a 0-6 Sunday-first
// index or a name in any common spelling, to a canonical time.Weekday.
func ParseWeekday(token string) (time.Weekday, bool) {
	raw := strings.ToLower(strings.TrimSpace(token))
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n >= 0 && n <= 6 {
			return time.Weekday(n), true
		}
		return 0, false
	}
	wd, ok := weekdayTokens[raw]
	return wd, ok
}

const (
	defaultStartClock = "09:00"
	defaultEndClock   = "10:00"
)

// parseClock parses an HH:MM wall-clock string, substituting fallback
// when the value is missing or malformed.
func parseClock(s, fallback string) (hour, minute int) {
	h, m, ok := splitClock(s)
	if !ok {
		h, m, _ = splitClock(fallback)
	}
	return h, m
}

func splitClock(s string) (int, int, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(hh)
	m, err2 := strconv.Atoi(mm)
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// occurrenceOn materializes the dated occurrence of a section: the
// date's calendar day with the section's wall-clock times overlaid.
func (s ClassSection) occurrenceOn(date time.Time) Item {
	h, m := parseClock(s.StartTime, defaultStartClock)
	start := time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
	h, m = parseClock(s.EndTime, defaultEndClock)
	end := time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())

	return Item{
		ID:           fmt.Sprintf("class-%s-%s", s.SectionID, date.Format("2006-01-02")),
		Kind:         KindClass,
		Title:        s.Title,
		StartAt:      start,
		EndAt:        &end,
		LocationName: s.LocationName,
	}
}

func (s ClassSection) activeRange(year int, loc *time.Location, bounds TermBounds) TermRange {
	if s.Active != nil {
		return *s.Active
	}
	return bounds.ForYear(year, loc)
}

// OccurrencesOnDate materializes one class occurrence per section that
// meets on the given date. Sections with no parseable weekday, or whose
// active range excludes the date, contribute nothing; the function
// never errors.
func OccurrencesOnDate(sections []ClassSection, date time.Time, bounds TermBounds) []Item {
	var items []Item
	for _, s := range sections {
		wd, ok := ParseWeekday(s.DayOfWeek)
		if !ok || wd != date.Weekday() {
			continue
		}
		if !s.activeRange(date.Year(), date.Location(), bounds).Contains(date) {
			continue
		}
		items = append(items, s.occurrenceOn(date))
	}
	return items
}

var rruleWeekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// OccurrencesBetween expands every section across [start, end],
// inclusive. The weekly rule is evaluated once per section with
// rrule-go, so a month render expands each section a single time rather
// than once per grid cell. Results match calling OccurrencesOnDate for
// every date in the window.
func OccurrencesBetween(sections []ClassSection, start, end time.Time, bounds TermBounds) []Item {
	var items []Item
	for _, s := range sections {
		items = append(items, s.expand(start, end, bounds)...)
	}
	sortByStart(items)
	return items
}

func (s ClassSection) expand(start, end time.Time, bounds TermBounds) []Item {
	wd, ok := ParseWeekday(s.DayOfWeek)
	if !ok {
		return nil
	}

	var ranges []TermRange
	if s.Active != nil {
		ranges = append(ranges, *s.Active)
	} else {
		for year := start.Year(); year <= end.Year(); year++ {
			ranges = append(ranges, bounds.ForYear(year, start.Location()))
		}
	}

	var items []Item
	for _, term := range ranges {
		lo, hi := startOfDay(start), end
		if term.Start.After(lo) {
			lo = term.Start
		}
		if term.End.Before(hi) {
			hi = term.End
		}
		if hi.Before(lo) {
			continue
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   term.Start,
			Until:     term.End,
			Byweekday: []rrule.Weekday{rruleWeekdays[wd]},
		})
		if err != nil {
			continue
		}
		for _, day := range rule.Between(lo, hi, true) {
			items = append(items, s.occurrenceOn(day))
		}
	}
	return items
}

// occurrenceIndex memoizes per-date class expansion for one
// materialization pass, so the month grid and its sticker lookups do not
// re-evaluate every section per cell.
type occurrenceIndex struct {
	sections []ClassSection
	bounds   TermBounds
	byDate   map[string][]Item
}

func newOccurrenceIndex(sections []ClassSection, bounds TermBounds) *occurrenceIndex {
	return &occurrenceIndex{
		sections: sections,
		bounds:   bounds,
		byDate:   make(map[string][]Item),
	}
}

const dateKeyLayout = "2006-01-02"

func (x *occurrenceIndex) onDate(date time.Time) []Item {
	key := date.Format(dateKeyLayout)
	if items, ok := x.byDate[key]; ok {
		return items
	}
	items := OccurrencesOnDate(x.sections, date, x.bounds)
	x.byDate[key] = items
	return items
}

// preload expands the whole window in one pass and marks every date in
// it as computed, including the empty ones.
func (x *occurrenceIndex) preload(start, end time.Time) {
	for _, it := range OccurrencesBetween(x.sections, start, end, x.bounds) {
		key := it.StartAt.Format(dateKeyLayout)
		x.byDate[key] = append(x.byDate[key], it)
	}
	for d := startOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateKeyLayout)
		if _, ok := x.byDate[key]; !ok {
			x.byDate[key] = nil
		}
	}
}
