// Package config provides layered configuration loading for mazesolve.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/labyrinth/frontier"
)

const (
	// EnvPrefix marks environment variables read by Load.
	EnvPrefix = "LABYRINTH_"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full mazesolve configuration.
type Config struct {
	Search  SearchConfig  `koanf:"search"`
	Render  RenderConfig  `koanf:"render"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// SearchConfig selects the search ordering.
type SearchConfig struct {
	// Frontier is "stack"/"dfs" or "queue"/"bfs".
	Frontier string `koanf:"frontier"`
}

// RenderConfig controls text and image output.
type RenderConfig struct {
	Color        bool   `koanf:"color"`
	ShowExplored bool   `koanf:"show_explored"`
	ImagePath    string `koanf:"image_path"`
	CellSize     int    `koanf:"cell_size"`
	CellBorder   int    `koanf:"cell_border"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MetricsConfig controls prometheus textfile export.
type MetricsConfig struct {
	// Textfile, when set, receives the run metrics in text exposition format.
	Textfile string `koanf:"textfile"`
}

// defaultYAML holds the built-in configuration, loaded before any file.
const defaultYAML = `
search:
  frontier: queue
render:
  color: false
  show_explored: false
  image_path: ""
  cell_size: 50
  cell_border: 2
log:
  level: warn
  format: console
metrics:
  textfile: ""
`

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then LABYRINTH_* environment variables, then each
// override in order. Validation runs once, after the last override, so a
// command-line flag can replace a bad file or environment value.
//
// Environment variables map on the first underscore after the prefix:
//
//	LABYRINTH_SEARCH_FRONTIER      -> search.frontier
//	LABYRINTH_RENDER_SHOW_EXPLORED -> render.show_explored
//	LABYRINTH_METRICS_TEXTFILE     -> metrics.textfile
func Load(path string, overrides ...func(*Config)) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider([]byte(defaultYAML)), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	for _, override := range overrides {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps LABYRINTH_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

// readConfigFile reads path once, rejecting directories and oversized files.
func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(io.LimitReader(f, maxConfigFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// FrontierKind parses Search.Frontier.
func (c *Config) FrontierKind() (frontier.Kind, error) {
	return frontier.ParseKind(c.Search.Frontier)
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := c.FrontierKind(); err != nil {
		return fmt.Errorf("%w: search.frontier: %v", ErrInvalidConfig, err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format must be json or console, got %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Render.CellSize <= 0 {
		return fmt.Errorf("%w: render.cell_size must be positive, got %d", ErrInvalidConfig, c.Render.CellSize)
	}
	if c.Render.CellBorder < 0 || 2*c.Render.CellBorder >= c.Render.CellSize {
		return fmt.Errorf("%w: render.cell_border %d does not fit cell_size %d", ErrInvalidConfig, c.Render.CellBorder, c.Render.CellSize)
	}
	return nil
}
