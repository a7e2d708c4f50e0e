package common

import (
	"github.com/google/uuid"
)

// NewRunID generates a unique identifier for a single pipeline invocation.
// It is used to namespace scratch directories (external sort chunks, pass
// directories) so concurrent runs against the same temp root never collide.
// Format: run_<uuid>
func NewRunID() string {
	return "run_" + uuid.New().String()
}
