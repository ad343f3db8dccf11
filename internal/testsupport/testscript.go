package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

type builtBinary struct {
	once sync.Once
	path string
	err  error
}

var (
	buildsMu sync.Mutex
	builds   = map[string]*builtBinary{}
)

// BuildTT builds the tt binary once per test process and returns its path.
func BuildTT(t testing.TB) string {
	t.Helper()
	return buildBinary(t, "tt", "./cmd/tt")
}

func buildBinary(t testing.TB, name, pkg string) string {
	t.Helper()

	buildsMu.Lock()
	b, ok := builds[pkg]
	if !ok {
		b = &builtBinary{}
		builds[pkg] = b
	}
	buildsMu.Unlock()

	b.once.Do(func() {
		b.path, b.err = goBuild(name, pkg)
	})
	if b.err != nil {
		t.Fatalf("%v", b.err)
	}
	return b.path
}

func goBuild(name, pkg string) (string, error) {
	moduleRoot, err := findModuleRoot()
	if err != nil {
		return "", err
	}
	binDir, err := os.MkdirTemp("", name+"-bin-")
	if err != nil {
		return "", err
	}

	path := filepath.Join(binDir, name)
	cmd := exec.Command("go", "build", "-o", path, pkg)
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("build %s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return path, nil
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TT", BuildTT(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdConfigWrite writes the remaining args, one per line, to the global
// config file under $HOME.
func CmdConfigWrite(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("configwrite does not support negation")
	}
	if len(args) == 0 {
		ts.Fatalf("usage: configwrite LINE...")
	}

	path := filepath.Join(ts.Getenv("HOME"), ".config", "tasktrack", "config.toml")
	content := strings.Join(args, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		ts.Fatalf("write config: %v", err)
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
