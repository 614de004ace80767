package csharp

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// ExtractorNodeID is the unique identifier for the structural extractor Graft node.
	ExtractorNodeID graft.ID = "adapter.csharp.extractor"
	// ScannerNodeID is the unique identifier for the structural scanner Graft node.
	ScannerNodeID graft.ID = "adapter.csharp.scanner"
)

func init() {
	graft.Register(graft.Node[*Extractor]{
		ID:        ExtractorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Extractor, error) {
			return NewExtractor(), nil
		},
	})

	graft.Register(graft.Node[*Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Scanner, error) {
			return NewScanner(), nil
		},
	})
}
