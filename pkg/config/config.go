// Package config loads editor settings.
//
// Values are layered, lowest priority first:
//
//  1. Defaults from Default()
//  2. A YAML file, when one exists at the given path
//  3. Environment variables prefixed with ANIMATOR_
//
// The result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-animator/pkg/export"
	"github.com/dd0wney/cluso-animator/pkg/logging"
	"github.com/dd0wney/cluso-animator/pkg/render"
	"github.com/dd0wney/cluso-animator/pkg/validation"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ANIMATOR_"

// DefaultFile is the config file name looked up when none is given.
const DefaultFile = "animator.yaml"

// StyleConfig holds drawing colors and stroke width.
type StyleConfig struct {
	NodeColor     Color `yaml:"node_color" env:"NODE_COLOR"`
	EdgeColor     Color `yaml:"edge_color" env:"EDGE_COLOR"`
	SelectedColor Color `yaml:"selected_color" env:"SELECTED_COLOR"`
	ExportColor   Color `yaml:"export_color" env:"EXPORT_COLOR"`
	LineThickness int   `yaml:"line_thickness" env:"LINE_THICKNESS" validate:"min=1,max=200"`
}

// Config is the complete editor configuration.
type Config struct {
	Style StyleConfig `yaml:"style" envPrefix:"STYLE_"`

	// FrameJump is how many frames one navigation step moves.
	FrameJump int `yaml:"frame_jump" env:"FRAME_JUMP" validate:"min=1,max=24"`
	// RepeatOnNavigate copies the nearest earlier keyframe into the
	// destination frame when it is empty.
	RepeatOnNavigate   bool `yaml:"repeat_on_navigate" env:"REPEAT_ON_NAVIGATE"`
	SelectionThreshold int  `yaml:"selection_threshold" env:"SELECTION_THRESHOLD" validate:"min=1,max=1000"`

	CanvasWidth  int `yaml:"canvas_width" env:"CANVAS_WIDTH" validate:"min=1,max=16384"`
	CanvasHeight int `yaml:"canvas_height" env:"CANVAS_HEIGHT" validate:"min=1,max=16384"`

	HistoryCapacity int `yaml:"history_capacity" env:"HISTORY_CAPACITY" validate:"min=1,max=10000"`

	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	// MetricsAddr enables the metrics endpoint when non-empty.
	MetricsAddr string `yaml:"metrics_addr" env:"METRICS_ADDR"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Style: StyleConfig{
			NodeColor:     RGB(0, 255, 0),
			EdgeColor:     RGB(0, 255, 0),
			SelectedColor: RGB(255, 0, 0),
			ExportColor:   RGB(0, 0, 0),
			LineThickness: render.DefaultLineThickness,
		},
		FrameJump:          1,
		RepeatOnNavigate:   true,
		SelectionThreshold: 24,
		CanvasWidth:        800,
		CanvasHeight:       600,
		HistoryCapacity:    50,
		LogLevel:           "info",
	}
}

// Load builds a Config from defaults, the YAML file at path and the
// environment. A missing file is not an error; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validation.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks field ranges, the log level and the metrics address.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}

	return validation.NewConfigValidator("Config").
		Required("LogLevel", c.LogLevel).
		RangeInt("Style.LineThickness", c.Style.LineThickness, 1, min(c.CanvasWidth, c.CanvasHeight)).
		OneOf("LogLevel", c.LogLevel, []string{"debug", "info", "warn", "warning", "error"}).
		When(c.MetricsAddr != "", func(cv *validation.ConfigValidator) {
			cv.Custom("MetricsAddr", func() error {
				_, _, err := net.SplitHostPort(c.MetricsAddr)
				return err
			})
		}).
		Validate()
}

// Level returns the configured log level.
func (c *Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// RenderStyle returns the on-screen drawing style.
func (s StyleConfig) RenderStyle() render.Style {
	return render.Style{
		LineThickness: s.LineThickness,
		NodeColor:     s.NodeColor.ToRGBA(),
		EdgeColor:     s.EdgeColor.ToRGBA(),
		SelectedColor: s.SelectedColor.ToRGBA(),
		DrawNodes:     true,
	}
}

// ExportOptions returns export settings sized to the canvas.
func (c *Config) ExportOptions() export.Options {
	return export.Options{
		Width:         c.CanvasWidth,
		Height:        c.CanvasHeight,
		Color:         c.Style.ExportColor.ToRGBA(),
		LineThickness: c.Style.LineThickness,
	}
}
