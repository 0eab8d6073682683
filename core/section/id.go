package section

import (
	"fmt"
	"sync/atomic"
)

// ID identifies a section or a group. It must be unique among living instances.
type ID string

var idCounter atomic.Uint64

// NextID returns a new process unique identifier with the given prefix.
func NextID(prefix string) ID {
	if prefix == "" {
		prefix = "id"
	}
	return ID(fmt.Sprintf("%s-%d", prefix, idCounter.Add(1)))
}

// IDs collects the identities of the given sections in order.
func IDs(sections []Section) []ID {
	ids := make([]ID, len(sections))
	for i, s := range sections {
		ids[i] = s.ID()
	}
	return ids
}
