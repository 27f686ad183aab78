package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/showcase/internal/assets"
	"github.com/Zachkp/showcase/internal/clock"
	"github.com/Zachkp/showcase/internal/config"
	"github.com/Zachkp/showcase/internal/logger"
	"github.com/Zachkp/showcase/internal/page"
	"github.com/Zachkp/showcase/internal/web"
	"github.com/Zachkp/showcase/internal/web/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path, db := contentFlags(cmd, cfg)
	registry, err := loadRegistry(ctx, path, db)
	if err != nil {
		return err
	}
	for _, n := range registry.DanglingNavLinks(page.Anchors()) {
		log.Warn("Nav link has no section", "label", n.Label, "target", n.Target)
	}

	placeholders, err := assets.NewPlaceholders()
	if err != nil {
		return err
	}

	filename := cfg.ResumeFilename
	if filename == "" {
		filename = registry.Profile.ResumeFilename
	}
	deps := page.Deps{
		Registry:        registry,
		Images:          assets.NewResolver(os.DirFS(cfg.ImagesDir), "/images"),
		Clock:           clock.Real{},
		Resume:          page.Resume{Href: "/resume.pdf", Filename: filename},
		PointerThrottle: cfg.PointerThrottle,
	}
	sessions := page.NewSessions(deps, cfg.SessionTTL, log)
	go sessions.Run(ctx)

	srv, err := web.NewServer(web.RouterConfig{
		PageHandler:    handlers.NewPageHandler(sessions, log),
		AssetHandler:   handlers.NewAssetHandler(placeholders, cfg.ResumePath, filename, log),
		HealthHandler:  handlers.NewHealthHandler(sessions),
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,
		ImagesDir:      cfg.ImagesDir,
		StaticDir:      cfg.StaticDir,
	})
	if err != nil {
		return err
	}

	log.Info("Starting showcase", "port", cfg.Port, "content_db", db, "content_path", path)
	if err := srv.Run(ctx, cfg.Addr()); err != nil {
		log.Error("Server stopped", "error", err)
		return err
	}
	log.Info("Server stopped")
	return nil
}
