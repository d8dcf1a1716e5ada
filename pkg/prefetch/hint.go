package prefetch

import (
	"strings"
)

const (
	RelPreload     = "preload"
	RelPrefetch    = "prefetch"
	RelPrerender   = "prerender"
	RelSubresource = "subresource"
)

const (
	AsAudio    = "audio"
	AsDocument = "document"
	AsEmbed    = "embed"
	AsFetch    = "fetch"
	AsFont     = "font"
	AsImage    = "image"
	AsObject   = "object"
	AsScript   = "script"
	AsStyle    = "style"
	AsTrack    = "track"
	AsWorker   = "worker"
	AsVideo    = "video"
)

const (
	MediaAll    = "all"
	MediaPrint  = "print"
	MediaScreen = "screen"
)

// Hint is a single resource hint.
type Hint struct {
	Href        string
	Rel         string
	As          string
	Type        string
	CrossOrigin bool
	Media       string
}

// Valid reports whether h has the required fields and no characters that
// would break a Link header.
func (h Hint) Valid() bool {
	if h.Href == "" || h.Rel == "" || h.As == "" {
		return false
	}
	for _, s := range []string{h.Href, h.Rel, h.As, h.Type, h.Media} {
		if strings.ContainsAny(s, "<>\"\r\n") {
			return false
		}
	}
	return true
}

// Header formats h as a Link header value.
func (h Hint) Header() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(h.Href)
	b.WriteString(">; rel=")
	b.WriteString(h.Rel)
	b.WriteString("; as=")
	b.WriteString(h.As)
	if h.Type != "" {
		b.WriteString(`; type="`)
		b.WriteString(h.Type)
		b.WriteString(`"`)
	}
	if h.CrossOrigin {
		b.WriteString("; crossorigin")
	}
	if h.Media != "" {
		b.WriteString(`; media="`)
		b.WriteString(h.Media)
		b.WriteString(`"`)
	}
	return b.String()
}

// unique drops invalid hints and repeated hrefs, keeping the first occurrence.
func unique(hints []Hint) []Hint {
	seen := make(map[string]struct{}, len(hints))
	out := make([]Hint, 0, len(hints))
	for _, h := range hints {
		if !h.Valid() {
			continue
		}
		if _, ok := seen[h.Href]; ok {
			continue
		}
		seen[h.Href] = struct{}{}
		out = append(out, h)
	}
	return out
}
