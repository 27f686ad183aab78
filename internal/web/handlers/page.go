package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/showcase/internal/logger"
	"github.com/Zachkp/showcase/internal/menu"
	"github.com/Zachkp/showcase/internal/page"
	"github.com/Zachkp/showcase/internal/viewport"
)

type PageHandler struct {
	sessions *page.Sessions
	log      *logger.Logger
}

func NewPageHandler(sessions *page.Sessions, log *logger.Logger) *PageHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PageHandler{sessions: sessions, log: log.With("handler", "PageHandler")}
}

// Index mounts a fresh page and renders the whole document.
func (h *PageHandler) Index(c *gin.Context) {
	p := h.sessions.Open()
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "index", p.View())
}

// session resolves :sid. An unknown id answers 404 and, for htmx requests
// other than pointer moves, asks the browser to reload into a new page.
func (h *PageHandler) session(c *gin.Context, refresh bool) (*page.Page, bool) {
	p, ok := h.sessions.Get(c.Param("sid"))
	if !ok {
		if refresh && c.GetHeader("HX-Request") == "true" {
			c.Header("HX-Refresh", "true")
		}
		c.HTML(http.StatusNotFound, "not-found", nil)
		return nil, false
	}
	return p, true
}

type revealForm struct {
	Ratio *float64 `form:"ratio"`
}

// Reveal reports that a block entered the viewport and returns the block
// re-rendered. The intersect trigger only fires once the threshold is met,
// so a missing ratio counts as fully visible.
func (h *PageHandler) Reveal(c *gin.Context) {
	p, ok := h.session(c, true)
	if !ok {
		return
	}
	var form revealForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "not-found", nil)
		return
	}
	ratio := 1.0
	if form.Ratio != nil {
		ratio = *form.Ratio
	}

	b, view, ok := p.Reveal(c.Param("target"), ratio)
	if !ok {
		c.HTML(http.StatusNotFound, "not-found", nil)
		return
	}
	c.HTML(http.StatusOK, b.Template, view)
}

type pointerForm struct {
	ClientX        float64 `form:"x"`
	ClientY        float64 `form:"y"`
	ViewportWidth  float64 `form:"w"`
	ViewportHeight float64 `form:"h"`
	ScrollY        float64 `form:"sy"`
	ScrollHeight   float64 `form:"sh"`
	Regions        string  `form:"regions"`
}

// Pointer publishes a pointer move and answers with out-of-band swaps for
// every background that moved.
func (h *PageHandler) Pointer(c *gin.Context) {
	p, ok := h.session(c, false)
	if !ok {
		return
	}
	var form pointerForm
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	ev := viewport.PointerEvent{
		ClientX:        form.ClientX,
		ClientY:        form.ClientY,
		ViewportWidth:  form.ViewportWidth,
		ViewportHeight: form.ViewportHeight,
		ScrollY:        form.ScrollY,
		ScrollHeight:   form.ScrollHeight,
	}
	if form.Regions != "" {
		if err := json.Unmarshal([]byte(form.Regions), &ev.Regions); err != nil {
			h.log.Debug("Ignoring malformed pointer regions", "session_id", p.ID, "error", err)
			ev.Regions = nil
		}
	}

	changed := p.Pointer(ev)
	if len(changed) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.HTML(http.StatusOK, "pointer-oob", changed)
}

var menuTriggers = map[string]menu.Trigger{
	"toggle": menu.Toggle,
	"close":  menu.ActivateLink,
	"resume": menu.ActivateResume,
}

// Menu applies a mobile menu action and re-renders the menu.
func (h *PageHandler) Menu(c *gin.Context) {
	p, ok := h.session(c, true)
	if !ok {
		return
	}
	trigger, known := menuTriggers[c.Param("action")]
	if !known {
		c.HTML(http.StatusNotFound, "not-found", nil)
		return
	}
	c.HTML(http.StatusOK, "mobile-menu", p.FireMenu(trigger))
}

// Close unmounts the page. It is sent as a beacon when the tab goes away.
func (h *PageHandler) Close(c *gin.Context) {
	h.sessions.Close(c.Param("sid"))
	c.Status(http.StatusNoContent)
}
