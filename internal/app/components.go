package app

import "go.trai.ch/conanprep/internal/core/ports"

// Components groups what the command line front-end needs from the object graph.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
}

// NewComponents creates a new Components instance.
func NewComponents(app *App, logger ports.Logger, loader ports.ConfigLoader) *Components {
	return &Components{
		App:          app,
		Logger:       logger,
		ConfigLoader: loader,
	}
}
