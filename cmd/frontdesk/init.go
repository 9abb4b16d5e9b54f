// Init command creates the config and data directories and seeds the store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the clinic data store",
	Long: `Init creates the configuration and data directories and seeds the store
with the default records on first run. Running it against an existing data
directory is harmless.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The store is attached (and seeded if needed) by the
		// persistent pre-run; nothing left to do but confirm.
		dataDir, err := resolveDataDir("")
		if err != nil {
			return err
		}
		fmt.Printf("Clinic store initialized at %s\n", dataDir)
		return nil
	},
}
