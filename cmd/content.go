package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/showcase/internal/config"
	"github.com/Zachkp/showcase/internal/content"
)

// contentFlags returns the --content and --db flags, falling back to the
// environment when a flag is empty.
func contentFlags(cmd *cobra.Command, cfg config.Config) (path, db string) {
	path, _ = cmd.Flags().GetString("content")
	db, _ = cmd.Flags().GetString("db")
	if path == "" {
		path = cfg.ContentPath
	}
	if db == "" {
		db = cfg.ContentDB
	}
	return path, db
}

// loadRegistry picks the content source: a database wins over a YAML file,
// and with neither the embedded registry is used.
func loadRegistry(ctx context.Context, path, db string) (*content.Registry, error) {
	if db != "" {
		store, err := content.OpenStore(db)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		r, err := store.Load(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "load content from %s", db)
		}
		return r, nil
	}
	return content.FileSource{Path: path}.Load(ctx)
}
