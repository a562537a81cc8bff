// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/conanprep/internal/adapters/conan"
	_ "go.trai.ch/conanprep/internal/adapters/config"
	_ "go.trai.ch/conanprep/internal/adapters/detector"
	_ "go.trai.ch/conanprep/internal/adapters/linear"
	_ "go.trai.ch/conanprep/internal/adapters/logger"
	_ "go.trai.ch/conanprep/internal/adapters/profile"
	_ "go.trai.ch/conanprep/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/conanprep/internal/app"
)
