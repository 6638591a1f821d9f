package feed

import (
	"fmt"
	"os"
	"path/filepath"

	ical "github.com/arran4/golang-ical"

	"github.com/mgreer/quad/internal/calendar"
)

// ICSSource imports VEVENTs from one or more .ics files as public
// event records. Imported calendars carry no campus metadata, so the
// records get public visibility and no org.
type ICSSource struct {
	paths []string
}

func NewICSSource(paths ...string) *ICSSource {
	return &ICSSource{paths: paths}
}

func (s *ICSSource) Load() (Snapshot, error) {
	var snap Snapshot
	var lastErr error
	loaded := 0

	for _, path := range s.paths {
		events, err := importICSFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		loaded++
		snap.Events = append(snap.Events, events...)
	}

	if loaded == 0 && lastErr != nil {
		return Snapshot{}, lastErr
	}
	return snap, nil
}

func (s *ICSSource) Paths() []string {
	return s.paths
}

func importICSFile(path string) ([]calendar.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ics: %w", err)
	}
	defer f.Close()

	cal, err := ical.ParseCalendar(f)
	if err != nil {
		return nil, fmt.Errorf("parse ics %s: %w", filepath.Base(path), err)
	}

	var records []calendar.Record
	for _, ve := range cal.Events() {
		rec, ok := importVEvent(path, ve)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// importVEvent converts one VEVENT. Events without a parseable DTSTART
// are skipped; a missing UID gets a path-scoped synthetic ID.
func importVEvent(path string, ve *ical.VEvent) (calendar.Record, bool) {
	start, err := ve.GetStartAt()
	if err != nil || start.IsZero() {
		return calendar.Record{}, false
	}

	rec := calendar.Record{
		StartAt:    start,
		Visibility: calendar.VisibilityPublic,
	}

	if end, err := ve.GetEndAt(); err == nil && !end.IsZero() {
		rec.EndAt = &end
	}
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil && p.Value != "" {
		rec.ID = "ics-" + p.Value
	} else {
		rec.ID = fmt.Sprintf("ics-%s-%s", filepath.Base(path), start.Format("20060102T150405"))
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		rec.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		rec.LocationName = p.Value
	}

	return rec, true
}
