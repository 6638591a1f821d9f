// Package config resolves runtime settings from the environment and an
// optional config file under $XDG_CONFIG_HOME/quad/.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mgreer/quad/internal/calendar"
)

// Runtime is the resolved configuration the commands run with.
type Runtime struct {
	ConfigDir string

	SnapshotPath string
	ICSPaths     []string

	StartupView string
	AutoRefresh bool
	RefreshRate time.Duration
	TimeFormat  string
	DateFormat  string

	Term calendar.TermBounds
}

// Load resolves configuration from defaults, an optional
// $XDG_CONFIG_HOME/quad/config.yaml, and QUAD_* environment variables,
// in ascending precedence.
func Load() (Runtime, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Runtime{}, fmt.Errorf("resolve home dir: %w", err)
	}

	xdgConfig := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	configDir := filepath.Join(xdgConfig, "quad")

	v := viper.New()
	v.SetEnvPrefix("QUAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("snapshot_file", filepath.Join(configDir, "snapshot.json"))
	v.SetDefault("ics_files", []string{})
	v.SetDefault("startup_view", "month")
	v.SetDefault("auto_refresh", true)
	v.SetDefault("refresh_seconds", 30)
	v.SetDefault("time_format", "15:04")
	v.SetDefault("date_format", "Jan 2, 2006")
	v.SetDefault("term_start", "01-20")
	v.SetDefault("term_end", "05-10")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Runtime{}, fmt.Errorf("read config: %w", err)
		}
	}

	term, err := termBounds(v.GetString("term_start"), v.GetString("term_end"))
	if err != nil {
		return Runtime{}, err
	}

	refreshSeconds := v.GetInt("refresh_seconds")
	if refreshSeconds <= 0 {
		refreshSeconds = 30
	}

	return Runtime{
		ConfigDir:    configDir,
		SnapshotPath: v.GetString("snapshot_file"),
		ICSPaths:     v.GetStringSlice("ics_files"),
		StartupView:  v.GetString("startup_view"),
		AutoRefresh:  v.GetBool("auto_refresh"),
		RefreshRate:  time.Duration(refreshSeconds) * time.Second,
		TimeFormat:   v.GetString("time_format"),
		DateFormat:   v.GetString("date_format"),
		Term:         term,
	}, nil
}

// termBounds converts "MM-DD" start/end strings into the engine's
// fallback term bounds.
func termBounds(start, end string) (calendar.TermBounds, error) {
	sm, sd, err := parseMonthDay(start)
	if err != nil {
		return calendar.TermBounds{}, fmt.Errorf("term_start: %w", err)
	}
	em, ed, err := parseMonthDay(end)
	if err != nil {
		return calendar.TermBounds{}, fmt.Errorf("term_end: %w", err)
	}
	return calendar.TermBounds{
		StartMonth: sm,
		StartDay:   sd,
		EndMonth:   em,
		EndDay:     ed,
	}, nil
}

func parseMonthDay(s string) (time.Month, int, error) {
	ms, ds, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return 0, 0, fmt.Errorf("want MM-DD, got %q", s)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("bad month in %q", s)
	}
	d, err := strconv.Atoi(ds)
	if err != nil || d < 1 || d > 31 {
		return 0, 0, fmt.Errorf("bad day in %q", s)
	}
	return time.Month(m), d, nil
}
