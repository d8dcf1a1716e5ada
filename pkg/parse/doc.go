// Package parse turns loosely formatted user input into typed values without
// ever failing: every helper falls back to the input or a caller supplied
// default.
//
//	parse.LeadingNumber("  01.20 px") // "1.2"
//	parse.LeadingNumber("abc")        // "abc"
//
//	q := r.URL.Query()
//	debug := parse.QueryBool(q, "debug", false)
package parse
