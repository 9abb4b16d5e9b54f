// Package main provides the frontdesk CLI, the command-line front end to the
// clinic records store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BhanuNama/entnt-dental-dashboard/internal/sqlite"
	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// clinic is the global store instance, attached on startup.
var clinic types.Clinic

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// initClinic resolves directories, loads config, and attaches the store.
func initClinic(cmd *cobra.Command, args []string) error {
	// Version needs no storage.
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	dataDir, err := resolveDataDir(cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	backend := sqlite.NewBackend()
	err = backend.Attach(types.Config{
		Backend: cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
	})
	if err != nil {
		return fmt.Errorf("attach store: %w", err)
	}

	clinic = backend
	return nil
}

// closeClinic detaches the store and releases resources.
func closeClinic(cmd *cobra.Command, args []string) error {
	if clinic != nil {
		return clinic.Detach()
	}
	return nil
}
