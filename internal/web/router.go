package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/showcase/internal/logger"
	"github.com/Zachkp/showcase/internal/web/handlers"
	"github.com/Zachkp/showcase/internal/web/middleware"
)

type RouterConfig struct {
	PageHandler   *handlers.PageHandler
	AssetHandler  *handlers.AssetHandler
	HealthHandler *handlers.HealthHandler

	Log            *logger.Logger
	AllowedOrigins []string
	ImagesDir      string
	StaticDir      string
}

func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}

	clients, err := middleware.NewClientHasher()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Log, clients))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.AllowedOrigins))
	}
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/assets", http.FS(Static()))
	if cfg.ImagesDir != "" {
		r.Static("/images", cfg.ImagesDir)
	}
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	if cfg.AssetHandler != nil {
		r.GET("/placeholder.png", cfg.AssetHandler.Placeholder)
		r.GET("/resume.pdf", cfg.AssetHandler.Resume)
	}

	if cfg.PageHandler != nil {
		r.GET("/", cfg.PageHandler.Index)

		s := r.Group("/s/:sid")
		{
			s.POST("/reveal/:target", cfg.PageHandler.Reveal)
			s.POST("/pointer", cfg.PageHandler.Pointer)
			s.POST("/menu/:action", cfg.PageHandler.Menu)
			s.POST("/close", cfg.PageHandler.Close)
			s.DELETE("", cfg.PageHandler.Close)
		}
	}

	return r, nil
}
