// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/resweep/internal/adapters/config"
	_ "go.trai.ch/resweep/internal/adapters/csharp"
	_ "go.trai.ch/resweep/internal/adapters/fs"
	_ "go.trai.ch/resweep/internal/adapters/logger"
	_ "go.trai.ch/resweep/internal/adapters/resx"
	_ "go.trai.ch/resweep/internal/adapters/textscan"
	// Register app nodes.
	_ "go.trai.ch/resweep/internal/app"
)
