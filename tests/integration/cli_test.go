// CLI integration tests for frontdesk: init, login lifecycle, and the
// persisted session across process invocations.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// TestMain builds the frontdesk binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "frontdesk-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "frontdesk")
	SetFrontdeskBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/frontdesk")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

func TestInitSeedsDataDirectory(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunFrontdesk("init")
	if result.Stdout == "" {
		t.Error("expected init output message")
	}

	if _, err := os.Stat(env.DataDir); os.IsNotExist(err) {
		t.Error("data directory not created")
	}
	for _, name := range []string{"patients.json", "incidents.json"} {
		if _, err := os.Stat(filepath.Join(env.DataDir, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestLoginLifecycle(t *testing.T) {
	env := NewTestEnv(t)

	// Not logged in yet.
	result := env.RunFrontdesk("whoami")
	if result.ExitCode == 0 {
		t.Error("expected whoami to fail before login")
	}

	env.LoginAdmin()

	// The session persists into the next process invocation.
	who := env.MustRunFrontdesk("whoami", "--json")
	user := ParseJSON[types.User](t, who.Stdout)
	if user.Email != "admin@entnt.in" {
		t.Errorf("expected admin@entnt.in, got %s", user.Email)
	}
	if user.Role != types.RoleAdmin {
		t.Errorf("expected Admin role, got %s", user.Role)
	}

	env.MustRunFrontdesk("logout")

	result = env.RunFrontdesk("whoami")
	if result.ExitCode == 0 {
		t.Error("expected whoami to fail after logout")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunFrontdesk("login", "--email", "admin@entnt.in", "--password", "wrong")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1, got %d", result.ExitCode)
	}

	// Case-sensitive email comparison.
	result = env.RunFrontdesk("login", "--email", "Admin@entnt.in", "--password", "admin123")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for wrong-case email, got %d", result.ExitCode)
	}
}

func TestVersionNeedsNoStorage(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunFrontdesk("version")
	if !strings.Contains(result.Stdout, "frontdesk") {
		t.Errorf("unexpected version output: %q", result.Stdout)
	}

	// Version must not have attached the store.
	if _, err := os.Stat(env.DataDir); !os.IsNotExist(err) {
		t.Error("version command should not create the data directory")
	}
}
