package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:abc-123
DTSTART:20240301T170000Z
DTEND:20240301T183000Z
SUMMARY:Guest lecture
LOCATION:Auditorium B
END:VEVENT
BEGIN:VEVENT
UID:def-456
DTSTART:20240302T090000Z
SUMMARY:Fun run
END:VEVENT
END:VCALENDAR
`

func writeICS(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cal.ics")
	// ICS requires CRLF line endings.
	body = strings.ReplaceAll(body, "\n", "\r\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestICSSourceImportsEvents(t *testing.T) {
	src := NewICSSource(writeICS(t, sampleICS))
	snap, err := src.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(snap.Events))
	}

	first := snap.Events[0]
	if first.ID != "ics-abc-123" {
		t.Errorf("ID = %q", first.ID)
	}
	if first.Title != "Guest lecture" || first.LocationName != "Auditorium B" {
		t.Errorf("properties not carried: %+v", first)
	}
	wantStart := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)
	if !first.StartAt.Equal(wantStart) {
		t.Errorf("start = %v, want %v", first.StartAt, wantStart)
	}
	if first.EndAt == nil || !first.EndAt.Equal(wantStart.Add(90*time.Minute)) {
		t.Errorf("end = %v", first.EndAt)
	}
	if first.Visibility != "public" {
		t.Errorf("imported events must be public, got %q", first.Visibility)
	}

	second := snap.Events[1]
	if second.EndAt != nil {
		t.Errorf("event without DTEND should have nil end, got %v", second.EndAt)
	}
	if len(snap.Tasks) != 0 || len(snap.Sections) != 0 {
		t.Error("ICS import must only produce events")
	}
}

func TestICSSourceSkipsUnreadableFile(t *testing.T) {
	good := writeICS(t, sampleICS)
	missing := filepath.Join(t.TempDir(), "nope.ics")

	snap, err := NewICSSource(missing, good).Load()
	if err != nil {
		t.Fatalf("one readable file should be enough: %v", err)
	}
	if len(snap.Events) != 2 {
		t.Errorf("got %d events, want 2", len(snap.Events))
	}

	if _, err := NewICSSource(missing).Load(); err == nil {
		t.Error("expected an error when no file is readable")
	}
}
