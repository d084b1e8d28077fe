package state

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource generates record ids. Ids must be unique across the process
// lifetime.
type IDSource interface {
	Next() string
}

// UUIDSource generates random UUIDs.
type UUIDSource struct{}

func (UUIDSource) Next() string {
	return uuid.NewString()
}

// SequenceSource generates "id-1", "id-2", ... for deterministic tests.
type SequenceSource struct {
	n int
}

func (s *SequenceSource) Next() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}
