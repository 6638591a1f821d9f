package calendar

import (
	"testing"
	"time"
)

func testItems() []Item {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	return []Item{
		{ID: "personal", Kind: KindEvent, StartAt: start, Visibility: VisibilityInviteOnly},
		{ID: "org", Kind: KindEvent, StartAt: start, Visibility: VisibilityOrgOnly, OrgID: "org-1"},
		{ID: "campus", Kind: KindEvent, StartAt: start, Visibility: VisibilitySchool},
		{ID: "social", Kind: KindEvent, StartAt: start, Visibility: VisibilityPublic},
		{ID: "task", Kind: KindTask, StartAt: start, Visibility: VisibilityInviteOnly},
		{ID: "class", Kind: KindClass, StartAt: start},
	}
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func containsID(items []Item, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func TestApplyDefaultKeepsEverything(t *testing.T) {
	items := testItems()
	got := Apply(items, DefaultFilterConfig())
	if len(got) != len(items) {
		t.Fatalf("default config dropped items: got %v", ids(got))
	}
	for i := range got {
		if got[i].ID != items[i].ID {
			t.Fatalf("order not preserved: got %v", ids(got))
		}
	}
}

func TestApplyCategoryToggles(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*FilterConfig)
		excluded []string
	}{
		{"tasks off", func(c *FilterConfig) { c.Tasks = false }, []string{"task"}},
		{"events off", func(c *FilterConfig) { c.Events = false }, []string{"personal", "org", "campus", "social", "class"}},
		{"personal off", func(c *FilterConfig) { c.Personal = false }, []string{"personal", "task"}},
		{"org off", func(c *FilterConfig) { c.Org = false }, []string{"org"}},
		{"campus off", func(c *FilterConfig) { c.Campus = false }, []string{"campus", "social"}},
		{"social off", func(c *FilterConfig) { c.Social = false }, []string{"social"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFilterConfig()
			tt.mutate(&cfg)
			got := Apply(testItems(), cfg)

			for _, id := range tt.excluded {
				if containsID(got, id) {
					t.Errorf("%q should be excluded, got %v", id, ids(got))
				}
			}
			if len(got) != len(testItems())-len(tt.excluded) {
				t.Errorf("unexpected result set %v", ids(got))
			}
		})
	}
}

func TestApplyTypeFilter(t *testing.T) {
	tests := []struct {
		typ  TypeFilter
		want []string
	}{
		{TypeAll, []string{"personal", "org", "campus", "social", "task", "class"}},
		{TypeEvents, []string{"personal", "org", "campus", "social"}},
		{TypeTasks, []string{"task"}},
		{TypeClasses, []string{"class"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			cfg := DefaultFilterConfig()
			cfg.Type = tt.typ
			got := Apply(testItems(), cfg)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", ids(got), tt.want)
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("got %v, want %v", ids(got), tt.want)
					break
				}
			}
		})
	}
}

// Toggles and the type filter both apply: disabling tasks removes every
// task no matter what the type filter selects, and vice versa.
func TestApplyTogglesAndTypeFilterConjunctive(t *testing.T) {
	cfg := DefaultFilterConfig()
	cfg.Tasks = false
	cfg.Type = TypeTasks
	if got := Apply(testItems(), cfg); len(got) != 0 {
		t.Errorf("tasks toggle off + tasks type filter should yield nothing, got %v", ids(got))
	}

	cfg = DefaultFilterConfig()
	cfg.Type = TypeTasks
	cfg.Events = false
	got := Apply(testItems(), cfg)
	if len(got) != 1 || got[0].ID != "task" {
		t.Errorf("events toggle must not affect tasks, got %v", ids(got))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := testItems()
	cfg := DefaultFilterConfig()
	cfg.Tasks = false
	Apply(items, cfg)
	if len(items) != 6 || items[4].ID != "task" {
		t.Error("Apply mutated its input slice")
	}
}

func TestTypeFilterCycle(t *testing.T) {
	got := TypeAll
	seen := []TypeFilter{got}
	for i := 0; i < 3; i++ {
		got = got.Next()
		seen = append(seen, got)
	}
	if got.Next() != TypeAll {
		t.Errorf("cycle should wrap back to all, got %v", got.Next())
	}
	want := []TypeFilter{TypeAll, TypeEvents, TypeTasks, TypeClasses}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle order %v, want %v", seen, want)
		}
	}
}
