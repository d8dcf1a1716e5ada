package omit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/omit"
)

func TestKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    map[string]any
		keys     []string
		expected map[string]any
	}{
		{
			name:     "removes listed keys",
			input:    map[string]any{"id": 1, "password": "x", "email": "a@b.c"},
			keys:     []string{"password", "email"},
			expected: map[string]any{"id": 1},
		},
		{
			name:     "ignores missing keys",
			input:    map[string]any{"id": 1},
			keys:     []string{"nope"},
			expected: map[string]any{"id": 1},
		},
		{
			name:     "no keys copies",
			input:    map[string]any{"id": 1},
			expected: map[string]any{"id": 1},
		},
		{
			name:     "nil map",
			input:    nil,
			keys:     []string{"id"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			before := len(tt.input)
			result := omit.Keys(tt.input, tt.keys...)
			assert.Equal(t, tt.expected, result)
			assert.Len(t, tt.input, before, "input must not be mutated")
		})
	}
}

func TestKeys_ReturnsCopy(t *testing.T) {
	t.Parallel()

	input := map[int]string{1: "a"}
	out := omit.Keys(input)
	out[2] = "b"
	assert.NotContains(t, input, 2)
}

func TestFunc(t *testing.T) {
	t.Parallel()

	input := map[string]int{"x_secret": 1, "y": 2}
	out := omit.Func(input, func(k string, _ int) bool { return strings.HasSuffix(k, "_secret") })

	assert.Equal(t, map[string]int{"y": 2}, out)
	assert.Len(t, input, 2)
	assert.Equal(t, input, omit.Func(input, nil))
	assert.Nil(t, omit.Func[string, int](nil, nil))
}
