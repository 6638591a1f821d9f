package calendar

import (
	"testing"
	"time"
)

func TestRangeForDay(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	r, bounded := RangeFor(ref, ModeDay)
	if !bounded {
		t.Fatal("day mode must be bounded")
	}
	if r.Start.Hour() != 0 || r.Start.Day() != 15 {
		t.Errorf("range start = %v, want local midnight on the 15th", r.Start)
	}
	if r.End.Day() != 15 || r.End.Hour() != 23 || r.End.Minute() != 59 {
		t.Errorf("range end = %v, want end of the 15th", r.End)
	}
}

func TestRangeForWeekStartsSunday(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want int // expected start day of month
	}{
		{"mid-week", time.Date(2024, 3, 13, 12, 0, 0, 0, time.Local), 10},  // Wednesday -> Sunday the 10th
		{"sunday itself", time.Date(2024, 3, 10, 8, 0, 0, 0, time.Local), 10},
		{"saturday", time.Date(2024, 3, 16, 8, 0, 0, 0, time.Local), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := RangeFor(tt.ref, ModeWeek)
			if r.Start.Weekday() != time.Sunday {
				t.Errorf("week must start on Sunday, got %v", r.Start.Weekday())
			}
			if r.Start.Day() != tt.want {
				t.Errorf("week start day = %d, want %d", r.Start.Day(), tt.want)
			}
			if r.End.Weekday() != time.Saturday {
				t.Errorf("week must end on Saturday, got %v", r.End.Weekday())
			}
		})
	}
}

func TestRangeForMonth(t *testing.T) {
	ref := time.Date(2024, 2, 15, 0, 0, 0, 0, time.Local)
	r, _ := RangeFor(ref, ModeMonth)
	if r.Start.Day() != 1 || r.Start.Month() != time.February {
		t.Errorf("month start = %v", r.Start)
	}
	if r.End.Day() != 29 || r.End.Month() != time.February {
		t.Errorf("month end = %v, want Feb 29 (leap year)", r.End)
	}
}

func TestRangeForScheduleUnbounded(t *testing.T) {
	if _, bounded := RangeFor(time.Now(), ModeSchedule); bounded {
		t.Error("schedule mode must not be bounded")
	}
}

func TestSelectRangeInclusiveBounds(t *testing.T) {
	ref := time.Date(2024, 3, 13, 12, 0, 0, 0, time.Local)
	r, _ := RangeFor(ref, ModeWeek)

	items := []Item{
		{ID: "at-start", StartAt: r.Start},
		{ID: "at-end", StartAt: r.End},
		{ID: "before", StartAt: r.Start.Add(-time.Nanosecond)},
		{ID: "after", StartAt: r.End.Add(time.Nanosecond)},
	}

	_, got := SelectRange(items, ref, ModeWeek)
	if len(got) != 2 {
		t.Fatalf("expected exactly the boundary items, got %v", ids(got))
	}
	if !containsID(got, "at-start") || !containsID(got, "at-end") {
		t.Errorf("boundary items must be included, got %v", ids(got))
	}
}

func TestSelectRangeScheduleKeepsAll(t *testing.T) {
	items := []Item{
		{ID: "a", StartAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)},
		{ID: "b", StartAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)},
	}
	_, got := SelectRange(items, time.Now(), ModeSchedule)
	if len(got) != 2 {
		t.Errorf("schedule mode must keep every item, got %v", ids(got))
	}
}

func TestModeFromName(t *testing.T) {
	tests := []struct {
		name string
		want ViewMode
	}{
		{"month", ModeMonth},
		{"week", ModeWeek},
		{"day", ModeDay},
		{"schedule", ModeSchedule},
		{"agenda", ModeSchedule},
		{"bogus", ModeMonth},
	}
	for _, tt := range tests {
		if got := ModeFromName(tt.name); got != tt.want {
			t.Errorf("ModeFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
