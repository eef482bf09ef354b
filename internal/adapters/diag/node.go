package diag

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.diag"

func init() {
	graft.Register(graft.Node[ports.DiagRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DiagRenderer, error) {
			return NewRenderer(os.Stderr), nil
		},
	})
}
