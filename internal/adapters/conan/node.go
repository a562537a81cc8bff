package conan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/conanprep/internal/adapters/linear"
	"go.trai.ch/conanprep/internal/adapters/shell"
	"go.trai.ch/conanprep/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, linear.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(executor, reporter), nil
		},
	})
}
