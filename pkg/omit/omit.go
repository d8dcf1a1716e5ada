// Package omit removes keys from maps without touching the original.
package omit

import "maps"

// Keys returns a shallow copy of m without the listed keys. A nil map yields
// nil.
func Keys[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Func returns a shallow copy of m without the entries for which drop reports
// true.
func Func[K comparable, V any](m map[K]V, drop func(K, V) bool) map[K]V {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	if drop != nil {
		maps.DeleteFunc(out, drop)
	}
	return out
}
