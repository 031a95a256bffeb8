package testutil

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/csvexplore/internal/app"
	"github.com/specialistvlad/csvexplore/internal/cli"
	"github.com/specialistvlad/csvexplore/internal/hcl"
)

// DirPlaceholder is replaced in every argument with the harness's temporary
// directory, so tests can point flags at the fixture files they provide.
const DirPlaceholder = "$DIR"

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Dir       string
	Stdout    string
	Usage     string
	LogOutput string
	Err       error
	Exited    bool
}

// Path returns the absolute path of a file inside the run's directory.
func (r *HarnessResult) Path(name string) string {
	return filepath.Join(r.Dir, name)
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, args ...string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, args...)
}

// RunIntegrationTestWithContext writes files into a fresh temporary directory,
// parses args the way the binary does and runs the resulting App. Logs are
// captured at debug level unless args set --log-level.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, args ...string) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir := t.TempDir()

	// 2. Write all fixture files. Relative names such as "conf/a.hcl"
	//    create their subdirectories.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	resolved := make([]string, len(args))
	for i, arg := range args {
		resolved[i] = strings.ReplaceAll(arg, DirPlaceholder, tmpDir)
	}

	result := &HarnessResult{Dir: tmpDir}
	usage := &app.SafeBuffer{}
	stdout := &app.SafeBuffer{}
	logBuffer := &app.SafeBuffer{}

	// 3. Parse flags and settings files exactly like cmd/cli does.
	appConfig, shouldExit, err := cli.Parse(resolved, usage, hcl.NewLoader())
	result.Usage = usage.String()
	if err != nil || shouldExit {
		result.Err = err
		result.Exited = shouldExit
		return result
	}
	if !slices.Contains(resolved, "--log-level") && !slices.Contains(resolved, "-log-level") {
		appConfig.LogLevel = "debug"
	}

	// 4. Run the app and flush the log sinks.
	testApp := app.NewApp(stdout, logBuffer, appConfig)
	result.Err = testApp.Run(ctx)
	testApp.Close()

	if os.Getenv("CSVEXPLORE_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result.Stdout = stdout.String()
	result.LogOutput = logBuffer.String()
	return result
}
