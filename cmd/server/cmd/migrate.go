package cmd

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the icecreams table if it does not exist and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, log, store, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		log.Info("schema is up to date")
		return nil
	},
}
