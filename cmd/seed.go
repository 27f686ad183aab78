package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/showcase/internal/content"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write content into a SQLite database",
	Long: `seed copies a content registry into the database named by --db,
replacing whatever it held. Without --content the embedded registry is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("content")
		db, _ := cmd.Flags().GetString("db")
		if db == "" {
			return errors.New("--db is required")
		}

		registry, err := content.FileSource{Path: path}.Load(cmd.Context())
		if err != nil {
			return err
		}

		store, err := content.OpenStore(db)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Save(cmd.Context(), registry); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s: %d projects, %d skills, %d experience entries\n",
			db, len(registry.Projects), len(registry.Skills), len(registry.Experience))
		return nil
	},
}
