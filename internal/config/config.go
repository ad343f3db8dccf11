// Package config handles loading tasktrack.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/tasktrack/internal/paths"
	"github.com/amonks/tasktrack/task"
	"github.com/ilyakaznacheev/cleanenv"
)

// ProjectFileName is the per-directory configuration file.
const ProjectFileName = "tasktrack.toml"

// Color modes accepted by display.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultWidth is the wrap width used when the terminal size is unknown.
const DefaultWidth = 80

// Config represents the tasktrack.toml configuration file.
type Config struct {
	Server  Server  `toml:"server"`
	Tasks   Tasks   `toml:"tasks"`
	Display Display `toml:"display"`
}

// Server contains settings for tt serve and the client commands.
type Server struct {
	// Addr is the listen address, or a bare port.
	Addr string `toml:"addr" env:"TT_ADDR"`
}

// Tasks contains defaults for new tasks and views.
type Tasks struct {
	// DefaultPriority applies when a task is added without a priority.
	DefaultPriority string `toml:"default-priority" env:"TT_DEFAULT_PRIORITY"`

	// DefaultSort selects the list order: insertion or priority.
	DefaultSort string `toml:"default-sort" env:"TT_DEFAULT_SORT"`
}

// Display contains terminal output settings.
type Display struct {
	// Color is auto, always or never.
	Color string `toml:"color" env:"TT_COLOR"`

	// Width is the fallback wrap width.
	Width int `toml:"width" env:"TT_WIDTH"`
}

// Load loads configuration from the global config file and dir, then
// applies environment overrides. Missing files are not an error.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigFile()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFileName))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if err := cleanenv.ReadEnv(merged); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := merged.normalize(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.normalize()
	return cfg
}

// Priority returns the configured default priority.
func (t Tasks) Priority() task.Priority {
	return task.Priority(t.DefaultPriority)
}

// Sort returns the configured default sort mode.
func (t Tasks) Sort() task.SortMode {
	return task.SortMode(t.DefaultSort)
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("config file %s: unknown key %q", path, undecoded[0].String())
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Server.Addr = mergeString(projectMeta.IsDefined("server", "addr"), projectCfg.Server.Addr, globalCfg.Server.Addr)
	merged.Tasks.DefaultPriority = mergeString(projectMeta.IsDefined("tasks", "default-priority"), projectCfg.Tasks.DefaultPriority, globalCfg.Tasks.DefaultPriority)
	merged.Tasks.DefaultSort = mergeString(projectMeta.IsDefined("tasks", "default-sort"), projectCfg.Tasks.DefaultSort, globalCfg.Tasks.DefaultSort)
	merged.Display.Color = mergeString(projectMeta.IsDefined("display", "color"), projectCfg.Display.Color, globalCfg.Display.Color)
	if projectMeta.IsDefined("display", "width") {
		merged.Display.Width = projectCfg.Display.Width
	} else if globalMeta.IsDefined("display", "width") {
		merged.Display.Width = globalCfg.Display.Width
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func (cfg *Config) normalize() error {
	cfg.Server.Addr = strings.TrimSpace(cfg.Server.Addr)

	if strings.TrimSpace(cfg.Tasks.DefaultPriority) == "" {
		cfg.Tasks.DefaultPriority = string(task.PriorityMedium)
	}
	priority, err := task.ParsePriority(cfg.Tasks.DefaultPriority)
	if err != nil {
		return fmt.Errorf("tasks.default-priority: %w", err)
	}
	cfg.Tasks.DefaultPriority = string(priority)

	sortMode, err := task.ParseSortMode(cfg.Tasks.DefaultSort)
	if err != nil {
		return fmt.Errorf("tasks.default-sort: %w", err)
	}
	cfg.Tasks.DefaultSort = string(sortMode)

	switch color := strings.ToLower(strings.TrimSpace(cfg.Display.Color)); color {
	case "":
		cfg.Display.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
		cfg.Display.Color = color
	default:
		return fmt.Errorf("display.color: unknown mode %q (want auto, always or never)", cfg.Display.Color)
	}

	if cfg.Display.Width <= 0 {
		cfg.Display.Width = DefaultWidth
	}
	return nil
}
