package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-animator/pkg/config"
	"github.com/dd0wney/cluso-animator/pkg/health"
	"github.com/dd0wney/cluso-animator/pkg/logging"
	"github.com/dd0wney/cluso-animator/pkg/metrics"
	"github.com/dd0wney/cluso-animator/pkg/project"
	"github.com/dd0wney/cluso-animator/pkg/session"
)

const defaultProject = "animation.anm"

// app holds global flags and the state built from them before each command.
type app struct {
	projectPath string
	configPath  string
	logLevel    string
	metricsAddr string

	cfg      *config.Config
	logger   *logging.JSONLogger
	registry *metrics.Registry
	checker  *health.HealthChecker
	sess     *session.Session
	stop     context.CancelFunc
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "animator",
		Short:         "Keyframe stick-figure animation editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			a.teardown()
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.projectPath, "project", "p", defaultProject, "Project file")
	flags.StringVar(&a.configPath, "config", config.DefaultFile, "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")

	root.AddCommand(
		newNewCmd(a),
		newDescribeCmd(a),
		newNodeCmd(a),
		newEdgeCmd(a),
		newClearCmd(a),
		newRepeatCmd(a),
		newInterpolateCmd(a),
		newExportCmd(a),
		newRenderCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr = a.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = logging.NewJSONLogger(cmd.ErrOrStderr(), cfg.Level())
	a.registry = metrics.NewRegistry()

	if cfg.MetricsAddr != "" {
		a.checker = a.healthChecks()
		ctx, cancel := context.WithCancel(cmd.Context())
		metrics.StartServer(ctx, cfg.MetricsAddr, a.registry, a.checker, a.logger)
		a.stop = cancel
	}
	return nil
}

func (a *app) healthChecks() *health.HealthChecker {
	hc := health.NewHealthChecker()
	hc.RegisterCheck("project", health.ProjectFileCheck(func() string {
		return project.WithExt(a.projectPath)
	}))
	hc.RegisterCheck("raster", health.SourceCheck(func() (string, int, bool) {
		if a.sess == nil || a.sess.Source() == nil {
			return "", 0, false
		}
		src := a.sess.Source()
		return src.Path(), src.Len(), true
	}))
	hc.RegisterCheck("memory", health.MemoryCheck(func() (uint64, uint64) {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)
		return mem.Alloc, mem.Sys
	}))
	return hc
}

func (a *app) teardown() {
	if a.stop != nil {
		a.stop()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) newSession() *session.Session {
	a.sess = session.New(a.cfg, session.WithLogger(a.logger), session.WithMetrics(a.registry))
	return a.sess
}

// openSession loads the project and positions it at frame.
func (a *app) openSession(frame int) (*session.Session, error) {
	path := project.WithExt(a.projectPath)
	s := a.newSession()
	if err := s.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("project %s not found (create it with 'animator new')", path)
		}
		return nil, err
	}
	if err := s.Seek(frame); err != nil {
		return nil, err
	}
	return s, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", arg)
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", arg)
		}
		out[i] = v
	}
	return out, nil
}
