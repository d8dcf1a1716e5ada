// Package uid generates random (version 4) UUID strings.
//
// New prefers github.com/google/uuid, which reads from crypto/rand. If the
// secure source fails, a math/rand/v2 ChaCha8 stream is used instead. The
// fallback is not suitable for secrets.
package uid

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/google/uuid"
)

// New returns a lowercase version 4 UUID such as
// "f47ac10b-58cc-4372-a567-0e02b2c3d479".
func New() string {
	return newWith(uuid.NewRandom)
}

// IsV4 reports whether s is a canonical RFC 4122 version 4 UUID string.
func IsV4(s string) bool {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return id.Version() == 4 && id.Variant() == uuid.RFC4122
}

func newWith(generate func() (uuid.UUID, error)) string {
	if id, err := generate(); err == nil {
		return id.String()
	}
	return fallback()
}

// fallback draws the UUID from a ChaCha8 stream seeded by the runtime
// generator.
func fallback() string {
	var seed [32]byte
	for i := 0; i < len(seed); i += 8 {
		binary.LittleEndian.PutUint64(seed[i:], rand.Uint64())
	}
	id, err := uuid.NewRandomFromReader(rand.NewChaCha8(seed))
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}
