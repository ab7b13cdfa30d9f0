// Package support contains the godog test context and step definitions for
// the stressmark CLI acceptance tests.
package support

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ArubikU/stressmark/internal/testutil"
)

// TestContext holds the state for one integration test scenario.
type TestContext struct {
	// Command execution state
	LastCommand   string
	LastOutput    string
	LastStdout    string
	LastStderr    string
	LastError     error
	LastExitCode  int
	LastStartTime time.Time
	LastDuration  time.Duration

	// Test environment
	ProjectRoot string
	TempDir     string
	EnvVars     []string
}

// NewTestContext creates a new test context rooted at the repository.
func NewTestContext() (*TestContext, error) {
	root, err := testutil.GetProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to find project root: %w", err)
	}

	tempDir, err := os.MkdirTemp("", "stressmark-cli-test-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}

	return &TestContext{
		ProjectRoot: root,
		TempDir:     tempDir,
	}, nil
}

// BinaryPath returns the path of the CLI binary built by TestMain.
func (testCtx *TestContext) BinaryPath() string {
	return filepath.Join(testCtx.ProjectRoot, "bin", "stressmark")
}

// AddEnvVar adds an environment variable for subsequent command executions.
func (testCtx *TestContext) AddEnvVar(name, value string) {
	testCtx.EnvVars = append(testCtx.EnvVars, name+"="+value)
}

// Cleanup removes scenario artifacts.
func (testCtx *TestContext) Cleanup() error {
	if testCtx.TempDir != "" {
		return os.RemoveAll(testCtx.TempDir)
	}
	return nil
}
