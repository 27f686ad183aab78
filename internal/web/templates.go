package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/pkg/errors"

	"github.com/Zachkp/showcase/internal/page"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// glyphs stands in for the icon set until an icon font is bundled.
var glyphs = map[string]string{
	"react":      "⚛",
	"node":       "⬢",
	"mongodb":    "🍃",
	"leaf":       "🍃",
	"server":     "▤",
	"database":   "⛁",
	"github":     "GH",
	"linkedin":   "in",
	"instagram":  "◎",
	"js":         "JS",
	"typescript": "TS",
	"html5":      "5",
	"css3":       "3",
	"git":        "⎇",
	"cloud":      "☁",
	"upload":     "⇪",
	"key":        "⚿",
	"brain":      "✷",
	"robot":      "⚙",
	"code":       "</>",
	"palette":    "🎨",
	"dumbbell":   "🏋",
	"lightbulb":  "💡",
	"heart":      "♥",
	"rocket":     "🚀",
	"school":     "🎓",
	"ribbon":     "🎗",
	"star":       "★",
	"trophy":     "🏆",
	"phone":      "☎",
	"mail":       "✉",
	"location":   "⌖",
	"map-marker": "⌖",
	"calendar":   "📅",
	"download":   "⤓",
	"external":   "↗",
}

func glyph(v any) string {
	if g, ok := glyphs[fmt.Sprint(v)]; ok {
		return g
	}
	return "•"
}

var funcs = template.FuncMap{
	"seconds": page.Seconds,
	"glyph":   glyph,
	// css marks a content color as a trusted style value.
	"css": func(s string) template.CSS { return template.CSS(s) },
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return t, nil
}

// Static returns the embedded stylesheet and icons.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
