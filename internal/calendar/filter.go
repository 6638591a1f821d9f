package calendar

// TypeFilter is the single-select segmented filter applied after the
// category toggles.
type TypeFilter string

const (
	TypeAll     TypeFilter = "all"
	TypeEvents  TypeFilter = "events"
	TypeTasks   TypeFilter = "tasks"
	TypeClasses TypeFilter = "classes"
)

// typeFilterCycle is the order the UI steps through with the filter key.
var typeFilterCycle = []TypeFilter{TypeAll, TypeEvents, TypeTasks, TypeClasses}

// Next returns the filter that follows f in the cycle.
func (f TypeFilter) Next() TypeFilter {
	for i, cur := range typeFilterCycle {
		if cur == f {
			return typeFilterCycle[(i+1)%len(typeFilterCycle)]
		}
	}
	return TypeAll
}

// FilterConfig controls which items reach a view. Each toggle governs
// one category; an item matching several categories stays visible only
// when all of them are enabled.
type FilterConfig struct {
	Events   bool
	Tasks    bool
	Personal bool
	Org      bool
	Campus   bool
	Social   bool
	Type     TypeFilter
}

// DefaultFilterConfig enables every category and applies no type filter.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Events:   true,
		Tasks:    true,
		Personal: true,
		Org:      true,
		Campus:   true,
		Social:   true,
		Type:     TypeAll,
	}
}

// Apply filters items by the category toggles and then by the type
// filter. It is pure and order preserving; the input slice is never
// mutated.
func Apply(items []Item, cfg FilterConfig) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if cfg.allows(it) {
			out = append(out, it)
		}
	}
	return out
}

func (cfg FilterConfig) allows(it Item) bool {
	isTask := it.Kind == KindTask
	isEvent := !isTask
	isPersonal := it.OrgID == "" && it.Visibility == VisibilityInviteOnly
	isOrg := it.Visibility == VisibilityOrgOnly && it.OrgID != ""
	isCampus := it.Visibility == VisibilitySchool || it.Visibility == VisibilityPublic
	isSocial := it.Kind == KindEvent && it.Visibility == VisibilityPublic && it.OrgID == ""

	if isTask && !cfg.Tasks {
		return false
	}
	if isEvent && !cfg.Events {
		return false
	}
	if isPersonal && !cfg.Personal {
		return false
	}
	if isOrg && !cfg.Org {
		return false
	}
	if isCampus && !cfg.Campus {
		return false
	}
	if isSocial && !cfg.Social {
		return false
	}

	switch cfg.Type {
	case TypeTasks:
		return it.Kind == KindTask
	case TypeEvents:
		return it.Kind != KindTask && it.Kind != KindClass
	case TypeClasses:
		return it.Kind == KindClass
	}
	return true
}
