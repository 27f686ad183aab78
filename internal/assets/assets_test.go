package assets

import (
	"bytes"
	"image/png"
	"io/fs"
	"net/url"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func images() fstest.MapFS {
	return fstest.MapFS{
		"abhi1.png":           {Data: []byte("png")},
		"projects/ca_ss.png":  {Data: []byte("png")},
		"projects/nested/dir": {Mode: fs.ModeDir | 0o755},
	}
}

func TestResolveExistingImage(t *testing.T) {
	r := NewResolver(images(), "/images/")

	img := r.Resolve("abhi1.png", "Abhishek Mandal", 400, 400)
	assert.False(t, img.Missing)
	assert.Equal(t, "/images/abhi1.png", img.Src)
	assert.Equal(t, "Abhishek Mandal", img.Alt)
	assert.Contains(t, img.Fallback, PlaceholderPath)

	img = r.Resolve("/images/projects/ca_ss.png", "Campus Connect", 800, 450)
	assert.False(t, img.Missing)
	assert.Equal(t, "/images/projects/ca_ss.png", img.Src)
}

func TestResolveMissingImageUsesLabeledPlaceholder(t *testing.T) {
	r := NewResolver(images(), "/images")

	for _, ref := range []string{"", "nope.png", "../secret.png", "projects/nested/dir"} {
		img := r.Resolve(ref, "Tap In", 600, 300)
		assert.True(t, img.Missing, ref)
		assert.Equal(t, img.Fallback, img.Src, ref)

		u, err := url.Parse(img.Src)
		require.NoError(t, err)
		assert.Equal(t, PlaceholderPath, u.Path)
		assert.Equal(t, "Tap In", u.Query().Get("text"))
		assert.Equal(t, "600", u.Query().Get("w"))
		assert.Equal(t, "300", u.Query().Get("h"))
	}
}

func TestResolveRemotePassesThrough(t *testing.T) {
	r := NewResolver(nil, "/images")
	img := r.Resolve("https://cdn.example.com/a.png", "A", 10, 10)
	assert.False(t, img.Missing)
	assert.Equal(t, "https://cdn.example.com/a.png", img.Src)
}

func TestClampSize(t *testing.T) {
	assert.Equal(t, DefaultSize, ClampSize(0))
	assert.Equal(t, MinSize, ClampSize(3))
	assert.Equal(t, MaxSize, ClampSize(1<<20))
	assert.Equal(t, 640, ClampSize(640))
}

func TestPlaceholderPNG(t *testing.T) {
	p, err := NewPlaceholders()
	require.NoError(t, err)

	data, err := p.PNG(320, 180, "Campus Connect")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 180, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0x3a, 0x3a, 0x3a}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestPlaceholderPNGWithoutText(t *testing.T) {
	p, err := NewPlaceholders()
	require.NoError(t, err)

	data, err := p.PNG(-1, 5000, "")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
	assert.Equal(t, MaxSize, img.Bounds().Dy())
}
