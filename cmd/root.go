package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mgreer/quad/internal/config"
	"github.com/mgreer/quad/internal/feed"
	"github.com/mgreer/quad/internal/ui"
)

var (
	snapshotPath string
	icsPaths     []string
	cfg          config.Runtime
)

var rootCmd = &cobra.Command{
	Use:   "quad",
	Short: "A terminal calendar for campus life",
	Long: `Quad is a terminal calendar that aggregates events, tasks and class
schedules into month, week, day and schedule views.`,
	RunE: runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&snapshotPath, "snapshot", "s", "", "Snapshot file to load (overrides config)")
	rootCmd.PersistentFlags().StringSliceVarP(&icsPaths, "ics", "i", []string{}, "ICS file(s) to import (can be specified multiple times)")
}

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if snapshotPath != "" {
		cfg.SnapshotPath = snapshotPath
	}
	if len(icsPaths) > 0 {
		cfg.ICSPaths = icsPaths
	}
}

// newSource builds the composite feed from the resolved configuration.
func newSource() feed.Source {
	sources := []feed.Source{feed.NewFileSource(cfg.SnapshotPath)}
	if len(cfg.ICSPaths) > 0 {
		sources = append(sources, feed.NewICSSource(cfg.ICSPaths...))
	}
	if len(sources) == 1 {
		return sources[0]
	}
	return feed.NewComposite(sources...)
}

func runTUI(cmd *cobra.Command, args []string) error {
	model := ui.NewModel(cfg, newSource())
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	if err := model.WatchFiles(func() {
		p.Send(ui.FileChangedMsg{})
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file watching unavailable: %v\n", err)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
