package handlers

import (
	"net/http"
	"os"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/showcase/internal/assets"
	"github.com/Zachkp/showcase/internal/logger"
)

const maxPlaceholderText = 80

type AssetHandler struct {
	placeholders   *assets.Placeholders
	resumePath     string
	resumeFilename string
	log            *logger.Logger
}

func NewAssetHandler(placeholders *assets.Placeholders, resumePath, resumeFilename string, log *logger.Logger) *AssetHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AssetHandler{
		placeholders:   placeholders,
		resumePath:     resumePath,
		resumeFilename: resumeFilename,
		log:            log.With("handler", "AssetHandler"),
	}
}

type placeholderQuery struct {
	Width  int    `form:"w"`
	Height int    `form:"h"`
	Text   string `form:"text"`
}

// Placeholder draws the labeled stand-in for a missing image.
func (h *AssetHandler) Placeholder(c *gin.Context) {
	var q placeholderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.String(http.StatusBadRequest, "invalid size")
		return
	}
	text := q.Text
	if utf8.RuneCountInString(text) > maxPlaceholderText {
		text = string([]rune(text)[:maxPlaceholderText])
	}

	data, err := h.placeholders.PNG(q.Width, q.Height, text)
	if err != nil {
		h.log.Error("Placeholder render failed", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", data)
}

// Resume serves the resume as a download with a fixed filename.
func (h *AssetHandler) Resume(c *gin.Context) {
	info, err := os.Stat(h.resumePath)
	if err != nil || info.IsDir() {
		h.log.Warn("Resume not available", "path", h.resumePath)
		c.String(http.StatusNotFound, "resume not available")
		return
	}
	c.FileAttachment(h.resumePath, h.resumeFilename)
}
