package content

import (
	"os"
	"path/filepath"
	"strings"
)

// AssetPrefix is the URL prefix under which the asset directory is served.
const AssetPrefix = "/assets/"

// ImageResolver maps image URLs to themselves when the backing file exists in
// the asset directory, and to the placeholder otherwise.
type ImageResolver struct {
	dir         string
	placeholder string
}

// NewImageResolver resolves against dir. An empty dir disables the check and
// every path is returned unchanged.
func NewImageResolver(dir, placeholder string) *ImageResolver {
	return &ImageResolver{dir: dir, placeholder: placeholder}
}

// Resolve returns path, or the placeholder when the asset is missing.
func (r *ImageResolver) Resolve(path string) string {
	if path == "" {
		return r.placeholder
	}
	if r.dir == "" || !strings.HasPrefix(path, AssetPrefix) {
		return path
	}
	rel := filepath.FromSlash(strings.TrimPrefix(path, AssetPrefix))
	if strings.Contains(rel, "..") {
		return r.placeholder
	}
	if _, err := os.Stat(filepath.Join(r.dir, rel)); err != nil {
		return r.placeholder
	}
	return path
}
