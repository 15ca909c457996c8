package insights

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource mints insight IDs. Injected so tests get stable output while
// production gets collision-safe IDs even under rapid repeated analysis.
type IDSource interface {
	NewID() string
}

// UUIDSource mints random UUIDs.
type UUIDSource struct{}

func (UUIDSource) NewID() string {
	return uuid.NewString()
}

// SequenceSource mints "ins-1", "ins-2", ... for deterministic tests.
type SequenceSource struct {
	n atomic.Int64
}

func (s *SequenceSource) NewID() string {
	return fmt.Sprintf("ins-%d", s.n.Add(1))
}
