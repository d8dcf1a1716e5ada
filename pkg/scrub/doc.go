// Package scrub replaces a single value inside a container with a mask so the
// result can be logged or rendered without leaking sensitive data.
//
// Five container shapes are supported:
//
//   - Text: the whole string is replaced by the mask (DefaultMask when the
//     mask is empty).
//   - Sequence: the element at an index is replaced; out-of-range indexes can
//     optionally grow the slice, back-filling new slots with a filler.
//   - Mapping: the value stored under a key is replaced, optionally inserting
//     it when the key is missing.
//   - Set: an element is swapped for the mask, optionally adding the mask when
//     the element is missing.
//   - Record: a field of a map[string]any is replaced, optionally creating it.
//
// Typed helpers (Text, Slice, Map, Set, Record) work on concrete Go types.
// For dynamic data such as decoded JSON use the Value union together with
// Scrub, or ScrubAny which converts the input with Of:
//
//	payload := map[string]any{"email": "jane@example.com", "plan": "pro"}
//	safe := scrub.Record(payload, "email", scrub.DefaultMask)
//	// safe["email"] == "********", payload is untouched
//
//	tags := scrub.Slice([]string{"a", "b"}, 3, "x", scrub.WithExpand("-"))
//	// []string{"a", "b", "-", "x"}
//
// # Error handling
//
// None of the helpers returns an error or panics. Any failure, for example a
// non-comparable key inside a map[any]any, results in the original container
// being returned unchanged.
//
// # Copy semantics
//
// The input is never modified. Sequence, Mapping and Set results are fresh
// copies whenever a change is possible; Record returns the original map when
// the key is absent and creation is disabled.
package scrub
