package cookie

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Manager struct {
	defaults Options
	now      func() time.Time
}

// New returns a Manager with Path "/", HttpOnly and SameSite=Lax defaults,
// adjusted by opts.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{
		defaults: applyOptions(defaults, opts),
		now:      time.Now,
	}
}

// Defaults returns a copy of the default options.
func (m *Manager) Defaults() Options {
	return m.defaults
}

// Set writes a cookie. A nil writer is a no-op.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	if w == nil || name == "" {
		return
	}

	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     encode(name),
		Value:    encode(value),
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Expires:  options.expiry(m.now()),
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// Get returns the decoded cookie value, or "" when the cookie is missing or
// cannot be decoded.
func (m *Manager) Get(r *http.Request, name string) string {
	value, err := m.Lookup(r, name)
	if err != nil {
		return ""
	}
	return value
}

func (m *Manager) Lookup(r *http.Request, name string) (string, error) {
	if r == nil || name == "" {
		return "", ErrCookieNotFound
	}

	c, err := r.Cookie(encode(name))
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", errors.Join(ErrInvalidFormat, err)
	}

	value, err := url.PathUnescape(c.Value)
	if err != nil {
		return "", errors.Join(ErrInvalidFormat, err)
	}
	return value, nil
}

// Delete expires the cookie. Path and domain must match the ones used by Set;
// pass WithPath/WithDomain when they differ from the defaults.
func (m *Manager) Delete(w http.ResponseWriter, name string, opts ...Option) {
	if w == nil || name == "" {
		return
	}

	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     encode(name),
		Value:    "",
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// encode percent-encodes s the way browsers' encodeURIComponent does for the
// characters that matter in cookies: spaces become %20, not '+'.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
