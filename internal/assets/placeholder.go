package assets

import (
	"bytes"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	MinSize     = 16
	MaxSize     = 2000
	DefaultSize = 400
)

var (
	placeholderBackground = color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}
	placeholderForeground = color.NRGBA{R: 0xd0, G: 0xff, B: 0x71, A: 0xff}
)

// ClampSize bounds a requested placeholder dimension. Zero or negative
// values mean the default size.
func ClampSize(v int) int {
	switch {
	case v <= 0:
		return DefaultSize
	case v < MinSize:
		return MinSize
	case v > MaxSize:
		return MaxSize
	}
	return v
}

// Placeholders draws labeled placeholder graphics.
type Placeholders struct {
	font *truetype.Font
}

func NewPlaceholders() (*Placeholders, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse placeholder font")
	}
	return &Placeholders{font: f}, nil
}

// PNG renders a w×h placeholder with text centered on it.
func (p *Placeholders) PNG(w, h int, text string) ([]byte, error) {
	w, h = ClampSize(w), ClampSize(h)

	dc := gg.NewContext(w, h)
	dc.SetColor(placeholderBackground)
	dc.Clear()

	if text = strings.TrimSpace(text); text != "" {
		face := truetype.NewFace(p.font, &truetype.Options{
			Size:    fontSize(w, h, text),
			DPI:     72,
			Hinting: font.HintingNone,
		})
		defer face.Close()

		dc.SetFontFace(face)
		dc.SetColor(placeholderForeground)
		fw, fh := float64(w), float64(h)
		dc.DrawStringWrapped(text, fw/2, fh/2, 0.5, 0.5, fw*0.9, 1.3, gg.AlignCenter)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(err, "encode placeholder")
	}
	return buf.Bytes(), nil
}

func fontSize(w, h int, text string) float64 {
	byWidth := float64(w) * 1.6 / float64(len([]rune(text)))
	size := math.Min(byWidth, float64(h)/4)
	return math.Max(8, math.Min(size, 72))
}
