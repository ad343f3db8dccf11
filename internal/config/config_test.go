package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amonks/tasktrack/internal/config"
	"github.com/amonks/tasktrack/internal/testsupport"
	"github.com/amonks/tasktrack/task"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != "" {
		t.Errorf("expected empty addr, got %q", cfg.Server.Addr)
	}
	if cfg.Tasks.Priority() != task.PriorityMedium {
		t.Errorf("expected default priority medium, got %q", cfg.Tasks.Priority())
	}
	if cfg.Tasks.Sort() != task.SortInsertion {
		t.Errorf("expected insertion sort, got %q", cfg.Tasks.Sort())
	}
	if cfg.Display.Color != config.ColorAuto {
		t.Errorf("expected auto color, got %q", cfg.Display.Color)
	}
	if cfg.Display.Width != config.DefaultWidth {
		t.Errorf("expected width %d, got %d", config.DefaultWidth, cfg.Display.Width)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	dir := t.TempDir()

	writeFile(t, filepath.Join(home, ".config", "tasktrack", "config.toml"), `
[server]
addr = "9000"

[tasks]
default-priority = "low"
default-sort = "priority"

[display]
width = 100
`)
	writeFile(t, filepath.Join(dir, config.ProjectFileName), `
[tasks]
default-priority = "High"

[display]
color = "never"
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Addr != "9000" {
		t.Errorf("expected global addr, got %q", cfg.Server.Addr)
	}
	if cfg.Tasks.Priority() != task.PriorityHigh {
		t.Errorf("expected project priority high, got %q", cfg.Tasks.Priority())
	}
	if cfg.Tasks.Sort() != task.SortPriority {
		t.Errorf("expected global sort priority, got %q", cfg.Tasks.Sort())
	}
	if cfg.Display.Color != config.ColorNever {
		t.Errorf("expected project color never, got %q", cfg.Display.Color)
	}
	if cfg.Display.Width != 100 {
		t.Errorf("expected global width 100, got %d", cfg.Display.Width)
	}
}

func TestLoad_EnvironmentOverridesFiles(t *testing.T) {
	testsupport.SetupTestHome(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.ProjectFileName), `
[server]
addr = "127.0.0.1:7000"
`)
	t.Setenv("TT_ADDR", "7001")
	t.Setenv("TT_DEFAULT_SORT", "stack")
	t.Setenv("TT_WIDTH", "60")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != "7001" {
		t.Errorf("expected env addr, got %q", cfg.Server.Addr)
	}
	if cfg.Tasks.Sort() != task.SortInsertion {
		t.Errorf("expected stack alias to normalize to insertion, got %q", cfg.Tasks.Sort())
	}
	if cfg.Display.Width != 60 {
		t.Errorf("expected env width 60, got %d", cfg.Display.Width)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"priority": "[tasks]\ndefault-priority = \"urgent\"\n",
		"sort":     "[tasks]\ndefault-sort = \"alphabetical\"\n",
		"color":    "[display]\ncolor = \"sometimes\"\n",
		"unknown":  "[server]\nport = 8080\n",
		"syntax":   "[server\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			testsupport.SetupTestHome(t)
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, config.ProjectFileName), content)

			if _, err := config.Load(dir); err == nil {
				t.Fatalf("expected error for %s", strings.TrimSpace(content))
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Tasks.Priority() != task.PriorityMedium || cfg.Display.Width != config.DefaultWidth {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}
