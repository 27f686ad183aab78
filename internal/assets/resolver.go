package assets

import (
	"io/fs"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// PlaceholderPath is where generated placeholder graphics are served.
const PlaceholderPath = "/placeholder.png"

// Image is a resolved image reference. Fallback is always a placeholder
// URL so a failed load in the browser can still be replaced.
type Image struct {
	Src      string
	Fallback string
	Alt      string
	Missing  bool
}

// Resolver maps content image references to URLs. References are paths
// relative to the images directory; absolute URLs pass through untouched.
type Resolver struct {
	files  fs.FS
	prefix string
}

func NewResolver(files fs.FS, prefix string) *Resolver {
	return &Resolver{files: files, prefix: strings.TrimSuffix(prefix, "/")}
}

// Resolve returns the URL for ref sized w×h. When the file is not in the
// images directory the placeholder labeled with label is used instead.
func (r *Resolver) Resolve(ref, label string, w, h int) Image {
	img := Image{Alt: label, Fallback: PlaceholderURL(w, h, label)}

	if isRemote(ref) {
		img.Src = ref
		return img
	}
	if !r.Exists(ref) {
		img.Src = img.Fallback
		img.Missing = true
		return img
	}
	img.Src = r.prefix + "/" + clean(ref)
	return img
}

// Exists reports whether ref names a regular file in the images directory.
// Remote references are assumed to exist.
func (r *Resolver) Exists(ref string) bool {
	if isRemote(ref) {
		return true
	}
	name := clean(ref)
	if r == nil || r.files == nil || name == "" || !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(r.files, name)
	return err == nil && info.Mode().IsRegular()
}

func clean(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	name := path.Clean(strings.TrimLeft(ref, "/"))
	return strings.TrimPrefix(name, "images/")
}

func isRemote(ref string) bool {
	for _, p := range []string{"http://", "https://", "//", "data:"} {
		if strings.HasPrefix(ref, p) {
			return true
		}
	}
	return false
}

// PlaceholderURL builds the URL of a generated placeholder graphic.
func PlaceholderURL(w, h int, text string) string {
	q := url.Values{}
	q.Set("w", strconv.Itoa(ClampSize(w)))
	q.Set("h", strconv.Itoa(ClampSize(h)))
	if text != "" {
		q.Set("text", text)
	}
	return PlaceholderPath + "?" + q.Encode()
}
