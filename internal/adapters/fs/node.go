package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/resweep/internal/core/ports"
)

// TreeNodeID is the unique identifier for the source tree Graft node.
const TreeNodeID graft.ID = "adapter.fs.tree"

func init() {
	graft.Register(graft.Node[ports.SourceTree]{
		ID:        TreeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceTree, error) {
			return NewOSTree(), nil
		},
	})
}
