package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/resweep/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/resweep/internal/adapters/csharp"   //nolint:depguard // Wired in app layer
	"go.trai.ch/resweep/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/resweep/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/resweep/internal/adapters/resx"     //nolint:depguard // Wired in app layer
	"go.trai.ch/resweep/internal/adapters/textscan" //nolint:depguard // Wired in app layer
	"go.trai.ch/resweep/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.TreeNodeID,
			logger.NodeID,
			resx.NodeID,
			csharp.ExtractorNodeID,
			csharp.ScannerNodeID,
			textscan.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.SettingsStore](ctx)
	if err != nil {
		return nil, err
	}

	tree, err := graft.Dep[ports.SourceTree](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	pattern, err := graft.Dep[*resx.Extractor](ctx)
	if err != nil {
		return nil, err
	}

	structural, err := graft.Dep[*csharp.Extractor](ctx)
	if err != nil {
		return nil, err
	}

	members, err := graft.Dep[*csharp.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	substring, err := graft.Dep[*textscan.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	return New(store, tree, log, Strategies{
		PatternExtractor:    pattern,
		StructuralExtractor: structural,
		SubstringScanner:    substring,
		QualifiedScanner:    textscan.New(textscan.WithQualifiedNames(true)),
		StructuralScanner:   members,
	}), nil
}
