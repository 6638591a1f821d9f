package calendar

import (
	"math"
	"sort"
	"time"
)

// Kind classifies a calendar item by what it was before normalization.
type Kind int

const (
	KindEvent Kind = iota
	KindTask
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindClass:
		return "class"
	default:
		return "event"
	}
}

// Visibility mirrors the upstream enum carried by events and tasks.
type Visibility string

const (
	VisibilityInviteOnly Visibility = "invite_only"
	VisibilityOrgOnly    Visibility = "org_only"
	VisibilitySchool     Visibility = "school"
	VisibilityPublic     Visibility = "public"
)

// Record is a raw event or task as supplied by a feed. It is the Item
// shape minus the Kind tag, which is assigned during normalization.
type Record struct {
	ID           string
	Title        string
	StartAt      time.Time
	EndAt        *time.Time
	Visibility   Visibility
	OrgID        string
	Completed    bool
	Sticker      string
	LocationName string
}

// Item is the normalized calendar item every view builder consumes.
// Items are value types; builders never mutate them after construction.
type Item struct {
	ID           string
	Kind         Kind
	Title        string
	StartAt      time.Time
	EndAt        *time.Time
	Visibility   Visibility
	OrgID        string
	Completed    bool
	Sticker      string
	LocationName string
}

const defaultItemDuration = 60 * time.Minute

// EndOrDefault returns the explicit end instant, or start plus one hour
// for items without one (typically tasks).
func (it Item) EndOrDefault() time.Time {
	if it.EndAt != nil {
		return *it.EndAt
	}
	return it.StartAt.Add(defaultItemDuration)
}

// DurationMinutes is the display duration, rounded to whole minutes.
// Items without an end default to 60.
func (it Item) DurationMinutes() int {
	if it.EndAt == nil {
		return 60
	}
	return int(math.Round(it.EndAt.Sub(it.StartAt).Minutes()))
}

// Normalize converts raw event and task records into tagged Items. Nil
// slices are treated as empty.
func Normalize(events, tasks []Record) []Item {
	items := make([]Item, 0, len(events)+len(tasks))
	for _, r := range events {
		items = append(items, newItem(r, KindEvent))
	}
	for _, r := range tasks {
		items = append(items, newItem(r, KindTask))
	}
	return items
}

func newItem(r Record, kind Kind) Item {
	return Item{
		ID:           r.ID,
		Kind:         kind,
		Title:        r.Title,
		StartAt:      r.StartAt,
		EndAt:        r.EndAt,
		Visibility:   r.Visibility,
		OrgID:        r.OrgID,
		Completed:    r.Completed,
		Sticker:      r.Sticker,
		LocationName: r.LocationName,
	}
}

// CategoryLabel returns the badge text shown next to an item.
func CategoryLabel(it Item) string {
	switch {
	case it.OrgID == "" && it.Visibility == VisibilityInviteOnly:
		return "Personal"
	case it.Visibility == VisibilityOrgOnly && it.OrgID != "":
		return "Org"
	case it.Visibility == VisibilitySchool:
		return "Campus"
	case it.Visibility == VisibilityPublic:
		return "Public"
	}
	return "Event"
}

// sortByStart orders items ascending by start instant. The sort is
// stable: items sharing a start keep their input order.
func sortByStart(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartAt.Before(items[j].StartAt)
	})
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
