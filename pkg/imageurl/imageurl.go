// Package imageurl checks whether a URL looks like it points at an image.
//
// Only the URL is inspected: an absolute URL of any scheme whose path ends in
// a known image extension is accepted. The resource itself is never fetched.
package imageurl

import (
	"net/url"
	"path"
	"slices"
	"strings"
)

var extensions = map[string]struct{}{
	// core
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {}, ".webp": {}, ".svg": {},
	// modern
	".avif": {}, ".heic": {}, ".heif": {}, ".jxl": {},
	// extended
	".tiff": {}, ".tif": {}, ".ico": {}, ".cur": {}, ".apng": {},
	// less common
	".jfif": {}, ".pjpeg": {}, ".jp2": {},
}

// IsValid reports whether raw is an absolute URL whose path has an image
// extension. Query strings and fragments are ignored.
func IsValid(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return false
	}

	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		return false
	}
	_, ok := extensions[ext]
	return ok
}

// Extensions returns the accepted extensions, sorted, including the dot.
func Extensions() []string {
	out := make([]string, 0, len(extensions))
	for ext := range extensions {
		out = append(out, ext)
	}
	slices.Sort(out)
	return out
}
