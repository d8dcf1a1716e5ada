package parse

import (
	"net/url"
	"strings"
)

// Bool maps "true" and "false" (trimmed, case-insensitive) to booleans and
// everything else to def.
func Bool(value string, def bool) bool {
	if b, ok := parseBool(value); ok {
		return b
	}
	return def
}

// BoolPtr is the tri-state form of Bool: a nil value or an unrecognised
// string returns def, which may itself be nil.
func BoolPtr(value *string, def *bool) *bool {
	if value == nil {
		return def
	}
	if b, ok := parseBool(*value); ok {
		return &b
	}
	return def
}

// QueryBool reads key from query values with Bool semantics.
func QueryBool(values url.Values, key string, def bool) bool {
	if values == nil || !values.Has(key) {
		return def
	}
	return Bool(values.Get(key), def)
}

func parseBool(value string) (bool, bool) {
	switch trimmed := strings.TrimSpace(value); {
	case strings.EqualFold(trimmed, "true"):
		return true, true
	case strings.EqualFold(trimmed, "false"):
		return false, true
	default:
		return false, false
	}
}
