package verify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/cc"
	"go.trai.ch/forge/internal/adapters/logger"
	"go.trai.ch/forge/internal/adapters/pkgconfig"
	"go.trai.ch/forge/internal/adapters/telemetry/progrock"
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the verifier Graft node.
const NodeID graft.ID = "engine.verify"

func init() {
	graft.Register(graft.Node[*Verifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cc.NodeID,
			pkgconfig.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Verifier, error) {
			toolchain, err := graft.Dep[ports.ToolchainProber](ctx)
			if err != nil {
				return nil, err
			}

			pkgProber, err := graft.Dep[ports.PkgConfigProber](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewVerifier(toolchain, pkgProber, log, telemetry), nil
		},
	})
}
