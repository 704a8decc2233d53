package app

import (
	"log/slog"

	"meccz.org/internal/appconf"
	"meccz.org/internal/geo"
	"meccz.org/internal/geocoding"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config   appconf.Config
	Logger   *slog.Logger
	Engine   *geo.Engine
	Resolver *geocoding.Resolver
}
