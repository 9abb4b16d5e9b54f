// Root command for the frontdesk CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/BhanuNama/entnt-dental-dashboard/internal/paths"
	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// Exit codes: 0 success, 1 user error (bad input, auth, not found),
// 2 system error (storage).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

var rootCmd = &cobra.Command{
	Use:   "frontdesk",
	Short: "Frontdesk is a local-first dental clinic records tool",
	Long: `Frontdesk manages a dental clinic's patients, appointments, and treatment
records in a local data directory. Log in as the clinic admin to manage
records, or as a patient to view your own history.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initClinic,
	PersistentPostRunE: closeClinic,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.frontdesk-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(patientCmd)
	rootCmd.AddCommand(incidentCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(dashboardCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > FRONTDESK_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > FRONTDESK_DATA_DIR env > default.
func resolveDataDir(configValue string) (string, error) {
	return paths.ResolveDataDir(flagDataDir, configValue)
}

// exitCode maps an error to the CLI exit code. Storage and lifecycle
// failures are system errors; everything else is on the user.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, types.ErrClinicDetached) || errors.Is(err, types.ErrAlreadyAttached) {
		return exitSysError
	}
	return exitUserError
}
