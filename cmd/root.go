package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Single-page developer portfolio",
	Long:  "showcase serves an animated single-page portfolio rendered from a content registry.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("content", "", "Path to a YAML content file (overrides CONTENT_PATH)")
	rootCmd.PersistentFlags().String("db", "", "Path to a SQLite content database (overrides CONTENT_DB)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(checkCmd)
}
