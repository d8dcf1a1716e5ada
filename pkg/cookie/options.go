package cookie

import (
	"net/http"
	"time"
)

// Options are the attributes written with a cookie.
type Options struct {
	Path         string
	Domain       string
	MaxAge       int
	Expires      time.Time
	DaysToExpire int
	Secure       bool
	HttpOnly     bool
	SameSite     http.SameSite
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) { o.Path = path }
}

func WithDomain(domain string) Option {
	return func(o *Options) { o.Domain = domain }
}

// WithMaxAge sets the Max-Age attribute in seconds.
func WithMaxAge(seconds int) Option {
	return func(o *Options) { o.MaxAge = seconds }
}

// WithExpires sets an exact expiry; it wins over WithDaysToExpire.
func WithExpires(t time.Time) Option {
	return func(o *Options) { o.Expires = t }
}

func WithDaysToExpire(days int) Option {
	return func(o *Options) { o.DaysToExpire = days }
}

func WithSecure(secure bool) Option {
	return func(o *Options) { o.Secure = secure }
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) { o.HttpOnly = httpOnly }
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) { o.SameSite = sameSite }
}

// applyOptions returns a copy of base with opts applied.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		if opt != nil {
			opt(&result)
		}
	}
	return result
}

// expiry resolves the Expires attribute from the explicit time or the day count.
func (o Options) expiry(now time.Time) time.Time {
	if !o.Expires.IsZero() {
		return o.Expires
	}
	if o.DaysToExpire != 0 {
		return now.Add(time.Duration(o.DaysToExpire) * 24 * time.Hour)
	}
	return time.Time{}
}
