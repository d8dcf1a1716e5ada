package prefetch

import (
	"net/http"
	"strings"
)

const headerLink = "Link"

// Add appends h as a Link header unless h is invalid, w is nil or a hint for
// the same href is already present. It reports whether a header was added.
// Headers must be added before the response is written.
func Add(w http.ResponseWriter, h Hint) bool {
	if w == nil || !h.Valid() {
		return false
	}

	header := w.Header()
	if Has(header, h.Href) {
		return false
	}

	header.Add(headerLink, h.Header())
	return true
}

// Has reports whether header already carries a Link for href.
func Has(header http.Header, href string) bool {
	target := "<" + href + ">"
	for _, v := range header.Values(headerLink) {
		if strings.Contains(v, target) {
			return true
		}
	}
	return false
}

// Middleware adds the hints to every response passing through it.
func Middleware(hints ...Hint) func(http.Handler) http.Handler {
	hints = unique(hints)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, h := range hints {
				Add(w, h)
			}
			next.ServeHTTP(w, r)
		})
	}
}
