package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func loadWithEnv(t *testing.T, env map[string]string) Runtime {
	t.Helper()
	// Point the config dir at an empty temp dir so the test never sees
	// a real config file.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for k, val := range env {
		t.Setenv(k, val)
	}
	rt, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return rt
}

func TestLoadDefaults(t *testing.T) {
	rt := loadWithEnv(t, nil)

	if rt.StartupView != "month" {
		t.Errorf("startup view = %q, want month", rt.StartupView)
	}
	if !rt.AutoRefresh || rt.RefreshRate != 30*time.Second {
		t.Errorf("refresh defaults = %v / %v", rt.AutoRefresh, rt.RefreshRate)
	}
	if rt.TimeFormat != "15:04" || rt.DateFormat != "Jan 2, 2006" {
		t.Errorf("format defaults = %q / %q", rt.TimeFormat, rt.DateFormat)
	}
	if rt.Term.StartMonth != time.January || rt.Term.StartDay != 20 {
		t.Errorf("term start = %v %d, want Jan 20", rt.Term.StartMonth, rt.Term.StartDay)
	}
	if rt.Term.EndMonth != time.May || rt.Term.EndDay != 10 {
		t.Errorf("term end = %v %d, want May 10", rt.Term.EndMonth, rt.Term.EndDay)
	}
	if filepath.Base(rt.SnapshotPath) != "snapshot.json" {
		t.Errorf("snapshot path = %q", rt.SnapshotPath)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	rt := loadWithEnv(t, map[string]string{
		"QUAD_STARTUP_VIEW":    "schedule",
		"QUAD_SNAPSHOT_FILE":   "/tmp/quad.json",
		"QUAD_REFRESH_SECONDS": "5",
		"QUAD_TERM_START":      "09-01",
		"QUAD_TERM_END":        "12-15",
	})

	if rt.StartupView != "schedule" {
		t.Errorf("startup view = %q", rt.StartupView)
	}
	if rt.SnapshotPath != "/tmp/quad.json" {
		t.Errorf("snapshot path = %q", rt.SnapshotPath)
	}
	if rt.RefreshRate != 5*time.Second {
		t.Errorf("refresh rate = %v", rt.RefreshRate)
	}
	if rt.Term.StartMonth != time.September || rt.Term.EndMonth != time.December || rt.Term.EndDay != 15 {
		t.Errorf("term bounds = %+v", rt.Term)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	quadDir := filepath.Join(dir, "quad")
	if err := os.MkdirAll(quadDir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "startup_view: week\nrefresh_seconds: 10\nics_files:\n  - /tmp/a.ics\n  - /tmp/b.ics\n"
	if err := os.WriteFile(filepath.Join(quadDir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("XDG_CONFIG_HOME", dir)
	rt, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rt.StartupView != "week" || rt.RefreshRate != 10*time.Second {
		t.Errorf("config file not applied: %q / %v", rt.StartupView, rt.RefreshRate)
	}
	if len(rt.ICSPaths) != 2 || rt.ICSPaths[0] != "/tmp/a.ics" {
		t.Errorf("ics paths = %v", rt.ICSPaths)
	}
}

func TestLoadBadTermBounds(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("QUAD_TERM_START", "january")
	if _, err := Load(); err == nil {
		t.Error("expected an error for a malformed term_start")
	}
}

func TestParseMonthDay(t *testing.T) {
	tests := []struct {
		in    string
		month time.Month
		day   int
		ok    bool
	}{
		{"01-20", time.January, 20, true},
		{"12-31", time.December, 31, true},
		{" 05-10 ", time.May, 10, true},
		{"13-01", 0, 0, false},
		{"00-01", 0, 0, false},
		{"01-32", 0, 0, false},
		{"0120", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		m, d, err := parseMonthDay(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("parseMonthDay(%q) err = %v, ok = %v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && (m != tt.month || d != tt.day) {
			t.Errorf("parseMonthDay(%q) = %v %d, want %v %d", tt.in, m, d, tt.month, tt.day)
		}
	}
}
