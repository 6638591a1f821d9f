// Package feed loads calendar data from local files. Sources produce
// Snapshots of raw records and class sections; all interpretation
// (recurrence, filtering, views) happens in internal/calendar.
package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mgreer/quad/internal/calendar"
)

// Snapshot is one load's worth of calendar data.
type Snapshot struct {
	Events   []calendar.Record
	Tasks    []calendar.Record
	Sections []calendar.ClassSection
}

// Source provides calendar snapshots from some backing store.
type Source interface {
	// Load reads the current snapshot.
	Load() (Snapshot, error)
	// Paths returns the files backing this source, for watching.
	Paths() []string
}

// rawRecord mirrors one element of the snapshot file's "events" array.
// Records tagged "task" are routed into the snapshot's task list.
type rawRecord struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Type         string     `json:"type"`
	StartAt      time.Time  `json:"start_at"`
	EndAt        *time.Time `json:"end_at"`
	Visibility   string     `json:"visibility"`
	OrgID        string     `json:"org_id"`
	Completed    bool       `json:"completed"`
	Sticker      string     `json:"sticker"`
	LocationName string     `json:"location_name"`
}

// dayToken accepts both encodings found in section data: a number
// (0-6, Sunday first) or a weekday name string.
type dayToken string

func (d *dayToken) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = dayToken(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("day of week: %s", string(b))
	}
	*d = dayToken(n.String())
	return nil
}

// rawEnrollment mirrors one element of the snapshot file's
// "enrollments" array: the class joined with its section row.
type rawEnrollment struct {
	ID      string `json:"id"`
	Classes struct {
		Code string `json:"class_code"`
		Name string `json:"class_name"`
	} `json:"classes"`
	Sections *struct {
		ID            string     `json:"id"`
		DaysOfWeek    []dayToken `json:"days_of_week"`
		StartTime     string     `json:"start_time"`
		EndTime       string     `json:"end_time"`
		Location      string     `json:"location"`
		ProfessorName string     `json:"professor_name"`
		TermStart     *time.Time `json:"term_start"`
		TermEnd       *time.Time `json:"term_end"`
	} `json:"sections"`
}

type rawSnapshot struct {
	Events      []rawRecord     `json:"events"`
	Enrollments []rawEnrollment `json:"enrollments"`
}

// decodeSnapshot decodes the snapshot payload. Events typed "task"
// become tasks; enrollments flatten into one ClassSection per weekday
// token. Missing arrays decode to empty.
func decodeSnapshot(data []byte) (Snapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}

	var snap Snapshot
	for _, r := range raw.Events {
		rec := calendar.Record{
			ID:           r.ID,
			Title:        r.Title,
			StartAt:      r.StartAt,
			EndAt:        r.EndAt,
			Visibility:   calendar.Visibility(r.Visibility),
			OrgID:        r.OrgID,
			Completed:    r.Completed,
			Sticker:      r.Sticker,
			LocationName: r.LocationName,
		}
		if r.Type == "task" {
			snap.Tasks = append(snap.Tasks, rec)
		} else {
			snap.Events = append(snap.Events, rec)
		}
	}
	for _, e := range raw.Enrollments {
		snap.Sections = append(snap.Sections, flattenEnrollment(e)...)
	}
	return snap, nil
}

// flattenEnrollment produces one ClassSection per weekday token, so the
// engine can treat each meeting day as an independent weekly series.
func flattenEnrollment(e rawEnrollment) []calendar.ClassSection {
	if e.Sections == nil || len(e.Sections.DaysOfWeek) == 0 {
		return nil
	}

	title := classTitle(e.Classes.Code, e.Classes.Name)
	var active *calendar.TermRange
	if e.Sections.TermStart != nil && e.Sections.TermEnd != nil {
		active = &calendar.TermRange{Start: *e.Sections.TermStart, End: *e.Sections.TermEnd}
	}

	out := make([]calendar.ClassSection, 0, len(e.Sections.DaysOfWeek))
	for _, day := range e.Sections.DaysOfWeek {
		tok := string(day)
		if _, ok := calendar.ParseWeekday(tok); !ok {
			continue
		}
		out = append(out, calendar.ClassSection{
			SectionID:    fmt.Sprintf("%s-%s", e.ID, tok),
			Title:        title,
			DayOfWeek:    tok,
			StartTime:    e.Sections.StartTime,
			EndTime:      e.Sections.EndTime,
			LocationName: e.Sections.Location,
			Active:       active,
		})
	}
	return out
}

// classTitle builds the display title from the course code and name,
// collapsing the redundant forms the upstream data contains ("CS 101" /
// "CS101: Intro" style duplication).
func classTitle(code, name string) string {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" && name == "" {
		return "Class"
	}
	if name == "" {
		return code
	}

	nc := classToken(code)
	nn := classToken(name)
	if nc == "" || nc == nn {
		if code != "" {
			return code
		}
		return name
	}
	if strings.HasPrefix(nn, nc) {
		return code
	}
	return code + ": " + name
}

func classToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '\t', '-', '_':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FileSource reads a JSON snapshot file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return decodeSnapshot(data)
}

func (s *FileSource) Paths() []string {
	return []string{s.path}
}

// Composite merges several sources into one snapshot, deduplicating by
// record and section ID. A failing source is skipped so one bad file
// never blanks the whole calendar; Load errors only when every source
// fails.
type Composite struct {
	sources []Source
}

func NewComposite(sources ...Source) *Composite {
	return &Composite{sources: sources}
}

func (c *Composite) Load() (Snapshot, error) {
	var merged Snapshot
	seenRecord := make(map[string]bool)
	seenSection := make(map[string]bool)

	loaded := 0
	var lastErr error
	for _, src := range c.sources {
		snap, err := src.Load()
		if err != nil {
			lastErr = err
			continue
		}
		loaded++

		for _, r := range snap.Events {
			if !seenRecord[r.ID] {
				seenRecord[r.ID] = true
				merged.Events = append(merged.Events, r)
			}
		}
		for _, r := range snap.Tasks {
			if !seenRecord[r.ID] {
				seenRecord[r.ID] = true
				merged.Tasks = append(merged.Tasks, r)
			}
		}
		for _, s := range snap.Sections {
			if !seenSection[s.SectionID] {
				seenSection[s.SectionID] = true
				merged.Sections = append(merged.Sections, s)
			}
		}
	}

	if loaded == 0 && lastErr != nil {
		return Snapshot{}, lastErr
	}
	return merged, nil
}

func (c *Composite) Paths() []string {
	var paths []string
	for _, src := range c.sources {
		paths = append(paths, src.Paths()...)
	}
	return paths
}
