package uid_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/uid"
)

func TestNew(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 100)
	for range 100 {
		id := uid.New()
		assert.True(t, uid.IsV4(id), "not a v4 uuid: %s", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestNew_FallsBackWhenSecureSourceFails(t *testing.T) {
	t.Parallel()

	failing := func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("entropy unavailable")
	}

	for range 50 {
		id := uid.NewWith(failing)
		assert.True(t, uid.IsV4(id), "not a v4 uuid: %s", id)
		assert.Contains(t, "89ab", string(id[19]))
	}
}

func TestFallback(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 50)
	for range 50 {
		id := uid.Fallback()
		assert.Len(t, id, 36)
		assert.Equal(t, byte('4'), id[14])
		assert.True(t, uid.IsV4(id), "not a v4 uuid: %s", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 50, "each fallback call must use a fresh seed")
}

func TestIsV4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid v4", input: "f47ac10b-58cc-4372-a567-0e02b2c3d479", want: true},
		{name: "uppercase v4", input: "F47AC10B-58CC-4372-A567-0E02B2C3D479", want: true},
		{name: "v1", input: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", want: false},
		{name: "nil uuid", input: "00000000-0000-0000-0000-000000000000", want: false},
		{name: "no hyphens", input: "f47ac10b58cc4372a5670e02b2c3d479", want: false},
		{name: "braced", input: "{f47ac10b-58cc-4372-a567-0e02b2c3d479}", want: false},
		{name: "garbage", input: "not-a-uuid", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, uid.IsV4(tt.input))
		})
	}
}
