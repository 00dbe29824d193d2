package service

import (
	"strings"

	"github.com/google/uuid"
)

// newToken returns a short random identifier token. Uniqueness is backed by
// the primary key on each operation table; a random token avoids the
// sub-second collisions a timestamp-based ID would have.
func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// newOperationID returns a collision-resistant operation identifier with a
// short domain prefix, e.g. "fin_3f8a92c1d04b".
func newOperationID(prefix string) string {
	return prefix + "_" + newToken()
}
