package cc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/logger"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.ToolchainProber]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolchainProber, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProber(log), nil
		},
	})
}
