package textscan

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the substring scanner Graft node.
const NodeID graft.ID = "adapter.textscan"

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Scanner, error) {
			return New(), nil
		},
	})
}
