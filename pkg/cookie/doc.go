// Package cookie reads, writes and deletes HTTP cookies with consistent
// defaults.
//
// Manager holds default attributes (path, domain, lifetime, Secure, HttpOnly,
// SameSite) that every Set applies; per-call Option values override them.
// Names and values are percent-encoded on write and decoded on read, so any
// string can be stored.
//
//	man := cookie.New(cookie.WithSecure(true))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    man.Set(w, "lang", "en", cookie.WithDaysToExpire(30))
//	    lang := man.Get(r, "lang") // "" when missing
//	    man.Delete(w, "lang")
//	}
//
// # Lifetime
//
// WithMaxAge emits Max-Age, which browsers prefer over Expires. WithExpires
// sets an exact expiry and takes precedence over WithDaysToExpire.
//
// # Error Handling
//
// Get, Set and Delete never fail: a nil request or writer makes them no-ops
// and undecodable values read as "". Lookup returns ErrCookieNotFound or
// ErrInvalidFormat for callers that need to tell the cases apart.
//
// # Configuration
//
// Config carries env tags for github.com/caarlos0/env and can be loaded with
// package config, then passed to NewFromConfig.
package cookie
