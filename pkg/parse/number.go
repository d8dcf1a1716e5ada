package parse

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var leadingNumberRe = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// LeadingNumber parses the longest decimal number at the start of s (after
// leading whitespace) and returns it in canonical form: "123abc" gives "123",
// "  01.20 " gives "1.2" and "1e21" gives "1e+21". When s does not start with a
// number it is returned unchanged.
func LeadingNumber(s string) string {
	f, ok := leadingFloat(s)
	if !ok {
		return s
	}
	return FormatNumber(f)
}

// LeadingFloat is LeadingNumber returning the parsed value.
func LeadingFloat(s string) (float64, bool) {
	return leadingFloat(s)
}

func leadingFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	prefix := leadingNumberRe.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if prefix == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// Out of range values still carry ±Inf or ±0.
		if !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
	}
	return f, true
}

// FormatNumber renders f like a JavaScript number: plain notation for
// magnitudes in [1e-6, 1e21), exponent notation outside it.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
