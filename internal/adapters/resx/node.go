package resx

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the pattern extractor Graft node.
const NodeID graft.ID = "adapter.resx"

func init() {
	graft.Register(graft.Node[*Extractor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Extractor, error) {
			return New(), nil
		},
	})
}
