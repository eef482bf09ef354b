// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/forge/internal/adapters/cc"
	_ "go.trai.ch/forge/internal/adapters/config"
	_ "go.trai.ch/forge/internal/adapters/diag"
	_ "go.trai.ch/forge/internal/adapters/logger"
	_ "go.trai.ch/forge/internal/adapters/pkgconfig"
	_ "go.trai.ch/forge/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/forge/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/forge/internal/app"
	_ "go.trai.ch/forge/internal/engine/verify"
)
