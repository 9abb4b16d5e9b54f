// Package integration provides CLI integration tests for frontdesk.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// frontdeskBin is the path to the built frontdesk binary.
	frontdeskBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetFrontdeskBin sets the path to the frontdesk binary (called from TestMain).
func SetFrontdeskBin(path string) {
	frontdeskBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data
// directory. The persisted session lives in the data directory, so commands
// run against the same env share a login.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build frontdesk: %v", buildErr)
	}
	if frontdeskBin == "" {
		t.Fatal("frontdesk binary not built (frontdeskBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a frontdesk command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunFrontdesk executes the frontdesk CLI with the given arguments.
func (e *TestEnv) RunFrontdesk(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(frontdeskBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run frontdesk: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunFrontdesk executes the frontdesk CLI and fails the test if it
// returns non-zero.
func (e *TestEnv) MustRunFrontdesk(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunFrontdesk(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("frontdesk %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// LoginAdmin logs the env in as the clinic admin.
func (e *TestEnv) LoginAdmin() {
	e.t.Helper()
	e.MustRunFrontdesk("login", "--email", "admin@entnt.in", "--password", "admin123")
}

// LoginPatient logs the env in as the seeded patient John Doe.
func (e *TestEnv) LoginPatient() {
	e.t.Helper()
	e.MustRunFrontdesk("login", "--email", "john@entnt.in", "--password", "patient123")
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}
