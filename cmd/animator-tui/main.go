// Command animator-tui browses and edits the frames of an animation project
// in the terminal.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-animator/pkg/config"
	"github.com/dd0wney/cluso-animator/pkg/logging"
	"github.com/dd0wney/cluso-animator/pkg/metrics"
	"github.com/dd0wney/cluso-animator/pkg/project"
	"github.com/dd0wney/cluso-animator/pkg/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:           "animator-tui [project]",
		Short:         "Terminal frame browser for animation projects",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "animation" + project.Ext
			if len(args) == 1 {
				path = project.WithExt(args[0])
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// the terminal belongs to the UI, so logs go to a file or nowhere
			logger := logging.NewNopLogger()
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				jl := logging.NewJSONLogger(f, cfg.Level())
				defer jl.Sync()
				logger = jl
			}

			s, err := openOrCreate(path, cfg, logger)
			if err != nil {
				return err
			}

			p := tea.NewProgram(initialModel(s), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "YAML config file")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Append JSON logs to this file")
	return cmd
}

// openOrCreate loads path, or starts an empty session that will save there.
func openOrCreate(path string, cfg *config.Config, logger logging.Logger) (*session.Session, error) {
	s := session.New(cfg, session.WithLogger(logger), session.WithMetrics(metrics.NewRegistry()))
	err := s.Load(path)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err := s.Save(path); err != nil {
		return nil, err
	}
	return s, nil
}
