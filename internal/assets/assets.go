// Package assets resolves record image and download references and bundles
// the site's own static files.
package assets

import (
	"embed"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/awc-hub/awchub/internal/paths"
)

// Bundled contains the stylesheet, placeholder image and live-reload script
// served under /assets/.
//
//go:embed static
var bundled embed.FS

// URL prefixes the site serves assets under.
const (
	StaticPrefix  = "/static/"
	BundledPrefix = "/assets/"
)

// ImagesDir is the directory under the static root that record images live in.
const ImagesDir = "images"

// Placeholder is the URL substituted for images that cannot be resolved.
const Placeholder = BundledPrefix + "placeholder.svg"

// FS returns the bundled site assets rooted at their directory.
func FS() fs.FS {
	sub, err := fs.Sub(bundled, "static")
	if err != nil {
		// Only fails if the embed pattern above changes.
		panic(err)
	}
	return sub
}

// Resolver maps image names from records to URLs.
type Resolver struct {
	staticDir string
}

// NewResolver returns a resolver for files under staticDir.
func NewResolver(staticDir string) *Resolver {
	return &Resolver{staticDir: staticDir}
}

// StaticDir returns the directory served under StaticPrefix.
func (r *Resolver) StaticDir() string {
	return r.staticDir
}

// Image resolves an image reference to a URL.
//
// Absolute http(s) URLs are passed through. Other names are looked up under
// <static>/images; a missing, empty or escaping name resolves to Placeholder
// and ok is false. Resolution never fails.
func (r *Resolver) Image(name string) (src string, ok bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Placeholder, false
	}
	if isRemote(name) {
		return name, true
	}
	if r == nil || r.staticDir == "" {
		return Placeholder, false
	}

	imagesRoot := filepath.Join(r.staticDir, ImagesDir)
	full, err := paths.JoinWithinRoot(imagesRoot, name)
	if err != nil {
		return Placeholder, false
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return Placeholder, false
	}

	rel := paths.NormalizeRelPath(name)
	u := url.URL{Path: StaticPrefix + ImagesDir + "/" + rel}
	return u.EscapedPath(), true
}

// ImageURL is Image without the resolution flag, for templates.
func (r *Resolver) ImageURL(name string) string {
	src, _ := r.Image(name)
	return src
}

// Download returns a usable href for a download link, "#" when absent.
func Download(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return "#"
	}
	return link
}

func isRemote(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
