package calendar

import "time"

// Inputs carries one render pass worth of caller-owned snapshots. The
// engine reads them, allocates fresh output, and retains nothing.
type Inputs struct {
	Events   []Record
	Tasks    []Record
	Sections []ClassSection
	Filter   FilterConfig
	Term     TermBounds
}

// pool is the normalized, filtered set of static (non-class) items.
func (in Inputs) pool() []Item {
	return Apply(Normalize(in.Events, in.Tasks), in.Filter)
}

func (in Inputs) index() *occurrenceIndex {
	return newOccurrenceIndex(in.Sections, in.Term)
}

// classesOn returns the filtered class occurrences for one date, going
// through the pass-local index so expansion happens once per date.
func (in Inputs) classesOn(idx *occurrenceIndex, date time.Time) []Item {
	return Apply(idx.onDate(date), in.Filter)
}

// itemsOn selects pool items whose start falls on the given calendar day.
func itemsOn(pool []Item, date time.Time) []Item {
	var out []Item
	for _, it := range pool {
		if sameDay(it.StartAt, date) {
			out = append(out, it)
		}
	}
	return out
}
