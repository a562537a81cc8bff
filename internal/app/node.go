package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/conanprep/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/conanprep/internal/adapters/conan"    //nolint:depguard // Wired in app layer
	"go.trai.ch/conanprep/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/conanprep/internal/adapters/linear"   //nolint:depguard // Wired in app layer
	"go.trai.ch/conanprep/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/conanprep/internal/adapters/profile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/conanprep/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			detector.NodeID,
			profile.NodeID,
			conan.NodeID,
			linear.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	det, err := graft.Dep[ports.ToolsetDetector](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ProfileStore](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	return New(det, store, installer, reporter), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, loader), nil
}
