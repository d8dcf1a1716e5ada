package parse_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/parse"
)

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		def      bool
		expected bool
	}{
		{name: "true", input: "true", def: false, expected: true},
		{name: "false", input: "false", def: true, expected: false},
		{name: "case insensitive", input: "TrUe", def: false, expected: true},
		{name: "trimmed", input: "  false\n", def: true, expected: false},
		{name: "numeric falls back", input: "1", def: false, expected: false},
		{name: "yes falls back", input: "yes", def: true, expected: true},
		{name: "empty falls back", input: "", def: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parse.Bool(tt.input, tt.def))
		})
	}
}

func TestBoolPtr(t *testing.T) {
	t.Parallel()

	ptr := func(s string) *string { return &s }
	yes := true

	assert.Nil(t, parse.BoolPtr(nil, nil))
	assert.Nil(t, parse.BoolPtr(ptr("maybe"), nil))
	assert.Equal(t, &yes, parse.BoolPtr(nil, &yes))

	got := parse.BoolPtr(ptr("FALSE"), &yes)
	if assert.NotNil(t, got) {
		assert.False(t, *got)
	}
}

func TestQueryBool(t *testing.T) {
	t.Parallel()

	q, err := url.ParseQuery("debug=true&show=false&other=1&empty=")
	assert.NoError(t, err)

	assert.True(t, parse.QueryBool(q, "debug", false))
	assert.False(t, parse.QueryBool(q, "show", true))
	assert.False(t, parse.QueryBool(q, "other", false))
	assert.True(t, parse.QueryBool(q, "missing", true))
	assert.True(t, parse.QueryBool(q, "empty", true))
	assert.True(t, parse.QueryBool(nil, "debug", true))
}
