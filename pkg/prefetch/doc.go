// Package prefetch announces resources the browser should fetch early.
//
// A Hint describes one resource (href, rel, as and optional type,
// crossorigin and media). Hints can be delivered two ways:
//
//   - as HTTP Link response headers, with Add or the Middleware helper;
//   - as <link> elements in the document head, with the Links templ component.
//
// Both paths are idempotent: a hint whose href was already emitted is skipped,
// and hints missing href, rel or as are ignored.
//
//	r := chi.NewRouter()
//	r.Use(prefetch.Middleware(
//	    prefetch.Hint{Href: "/fonts/inter.woff2", Rel: prefetch.RelPreload, As: prefetch.AsFont, CrossOrigin: true},
//	))
//
// See https://developer.mozilla.org/en-US/docs/Web/HTML/Attributes/rel/preload.
package prefetch
