package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// EnsureHomeDirs creates the config directory under homeDir.
func EnsureHomeDirs(homeDir string) error {
	if err := os.MkdirAll(filepath.Join(homeDir, ".config", "tasktrack"), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return nil
}

// SetupTestHome creates a temp home directory with a config dir, sets HOME
// and unsets TT_* overrides for the duration of the test.
func SetupTestHome(t testing.TB) string {
	t.Helper()

	homeDir := t.TempDir()
	if err := EnsureHomeDirs(homeDir); err != nil {
		t.Fatalf("setup home dir: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_CONFIG_HOME", "")
	for _, name := range EnvVars {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return homeDir
}

// EnvVars lists the environment overrides read by config.Load.
var EnvVars = []string{
	"TT_ADDR",
	"TT_DEFAULT_PRIORITY",
	"TT_DEFAULT_SORT",
	"TT_COLOR",
	"TT_WIDTH",
}
