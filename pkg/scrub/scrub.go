package scrub

import "maps"

// DefaultMask replaces text when no mask is supplied.
const DefaultMask = "********"

// MaxExpand is the largest index Slice will grow a slice to reach. Larger
// indexes leave the input unchanged.
const MaxExpand = 1 << 20

// Text returns the mask that replaces s. The input is ignored; an empty mask
// falls back to DefaultMask.
func Text(_ string, mask string) string {
	if mask == "" {
		return DefaultMask
	}
	return mask
}

// Slice returns a copy of s with the element at index replaced by mask.
// Negative indexes return s unchanged. Indexes past the end return s unchanged
// unless WithExpand is set, in which case the copy grows to index+1 and the
// new slots other than index hold the filler. Expansion past MaxExpand is
// refused and s is returned.
func Slice[T any](s []T, index int, mask T, opts ...Option[T]) (out []T) {
	defer recoverTo(&out, s)

	if index < 0 {
		return s
	}

	if index < len(s) {
		out = make([]T, len(s))
		copy(out, s)
		out[index] = mask
		return out
	}

	o := applyOptions(opts)
	if !o.AllowExpand || index > MaxExpand {
		return s
	}

	out = make([]T, index+1)
	copy(out, s)
	for i := len(s); i < index; i++ {
		out[i] = o.Filler
	}
	out[index] = mask
	return out
}

// Map returns a copy of m with the value under key replaced by mask.
// Absent keys are inserted only with WithCreateIfMissing; otherwise the copy
// has the same content as m.
func Map[K comparable, V any](m map[K]V, key K, mask V, opts ...Option[V]) (out map[K]V) {
	defer recoverTo(&out, m)

	o := applyOptions(opts)
	out = make(map[K]V, len(m)+1)
	maps.Copy(out, m)

	if _, ok := out[key]; ok || o.CreateIfMissing {
		out[key] = mask
	}
	return out
}

// Set returns a copy of s where elem is swapped for mask. When mask is already
// a member the result shrinks by one. Absent elements leave the copy as is
// unless WithSetWhenMissing is set, which adds mask.
func Set[T comparable](s map[T]struct{}, elem, mask T, opts ...Option[T]) (out map[T]struct{}) {
	defer recoverTo(&out, s)

	o := applyOptions(opts)
	out = make(map[T]struct{}, len(s)+1)
	maps.Copy(out, s)

	if _, ok := out[elem]; ok {
		delete(out, elem)
		out[mask] = struct{}{}
	} else if o.SetWhenMissing {
		out[mask] = struct{}{}
	}
	return out
}

// Record returns a shallow copy of r with field key set to mask.
// When key is absent and WithCreateIfMissing is not set, r itself is returned.
func Record(r map[string]any, key string, mask any, opts ...Option[any]) (out map[string]any) {
	defer recoverTo(&out, r)

	o := applyOptions(opts)
	if _, ok := r[key]; !ok && !o.CreateIfMissing {
		return r
	}

	out = make(map[string]any, len(r)+1)
	maps.Copy(out, r)
	out[key] = mask
	return out
}

// Keys masks every listed field that is present in r. Missing fields are
// skipped, so r is returned as is when none of the keys match.
func Keys(r map[string]any, mask any, keys ...string) map[string]any {
	out := r
	for _, key := range keys {
		out = Record(out, key, mask)
	}
	return out
}

// recoverTo restores the original container when scrubbing panics.
func recoverTo[C any](out *C, original C) {
	if r := recover(); r != nil {
		*out = original
	}
}
