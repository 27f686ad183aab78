package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/showcase/internal/assets"
	"github.com/Zachkp/showcase/internal/config"
	"github.com/Zachkp/showcase/internal/content"
	"github.com/Zachkp/showcase/internal/page"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report content problems before serving",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, db := contentFlags(cmd, cfg)
		registry, err := loadRegistry(cmd.Context(), path, db)
		if err != nil {
			return err
		}

		images := assets.NewResolver(os.DirFS(cfg.ImagesDir), "/images")
		if n := check(cmd.OutOrStdout(), registry, images); n > 0 {
			return errors.Errorf("%d problem(s) found", n)
		}
		return nil
	},
}

// check writes one line per problem and returns the count. Problems are
// nav links without a section and images that will render as placeholders.
func check(w io.Writer, r *content.Registry, images *assets.Resolver) int {
	problems := 0
	for _, n := range r.DanglingNavLinks(page.Anchors()) {
		fmt.Fprintf(w, "nav link %q points at missing section #%s\n", n.Label, n.Target)
		problems++
	}
	for _, ref := range r.ImageRefs() {
		if !images.Exists(ref.Ref) {
			fmt.Fprintf(w, "image %q for %s not found, placeholder will be shown\n", ref.Ref, ref.Label)
			problems++
		}
	}
	if problems == 0 {
		fmt.Fprintln(w, "content ok")
	}
	return problems
}
