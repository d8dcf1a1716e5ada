package prefetch

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Links renders one <link> element per unique valid hint, for use inside a
// templ layout's <head>.
func Links(hints ...Hint) templ.Component {
	hints = unique(hints)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, h := range hints {
			writeLink(&b, h)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeLink(b *strings.Builder, h Hint) {
	b.WriteString(`<link rel="`)
	b.WriteString(templ.EscapeString(h.Rel))
	b.WriteString(`" href="`)
	b.WriteString(templ.EscapeString(h.Href))
	b.WriteString(`" as="`)
	b.WriteString(templ.EscapeString(h.As))
	b.WriteString(`"`)
	if h.Type != "" {
		b.WriteString(` type="`)
		b.WriteString(templ.EscapeString(h.Type))
		b.WriteString(`"`)
	}
	if h.CrossOrigin {
		b.WriteString(` crossorigin`)
	}
	if h.Media != "" {
		b.WriteString(` media="`)
		b.WriteString(templ.EscapeString(h.Media))
		b.WriteString(`"`)
	}
	b.WriteString(`>`)
}
