package logger

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/utilkit/pkg/scrub"
)

type redactor struct {
	mask string
	keys map[string]struct{}
}

func newRedactor(mask string, keys ...string) *redactor {
	r := &redactor{
		mask: scrub.Text("", mask),
		keys: make(map[string]struct{}, len(keys)),
	}
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			r.keys[strings.ToLower(k)] = struct{}{}
		}
	}
	return r
}

func (r *redactor) match(key string) bool {
	_, ok := r.keys[strings.ToLower(key)]
	return ok
}

// ReplaceAttr is a slog.HandlerOptions.ReplaceAttr hook.
func (r *redactor) ReplaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == "" || len(r.keys) == 0 {
		return a
	}

	if r.match(a.Key) {
		if a.Value.Kind() == slog.KindGroup {
			return a
		}
		return slog.String(a.Key, scrub.Text(a.Value.String(), r.mask))
	}

	if a.Value.Kind() != slog.KindAny {
		return a
	}

	fields, ok := a.Value.Any().(map[string]any)
	if !ok {
		return a
	}

	matched := make([]string, 0, len(fields))
	for k := range fields {
		if r.match(k) {
			matched = append(matched, k)
		}
	}
	if len(matched) == 0 {
		return a
	}

	return slog.Any(a.Key, scrub.Keys(fields, r.mask, matched...))
}
