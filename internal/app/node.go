package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/adapters/diag"
	"go.trai.ch/forge/internal/adapters/logger"
	"go.trai.ch/forge/internal/adapters/telemetry/progrock"
	"go.trai.ch/forge/internal/adapters/watcher"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/verify"
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
			verify.NodeID,
			diag.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[*verify.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.DiagRenderer](ctx)
			if err != nil {
				return nil, err
			}

			fileWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, verifier, renderer, fileWatcher, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			mainApp, err := graft.Dep[*App](ctx)
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

			return NewComponents(mainApp, log, telemetry), nil
		},
	})
}
