package app

import (
	"go.trai.ch/forge/internal/core/ports"
)

// Components contains the initialized application components. It provides
// controlled access to the pieces the CLI layer needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, telemetry ports.Telemetry) *Components {
	return &Components{
		App:       app,
		Logger:    logger,
		Telemetry: telemetry,
	}
}
