// Package main runs the ELOQ' agency website.
package main

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/eloqagency/website/internal/config"
	"github.com/eloqagency/website/internal/contact"
	"github.com/eloqagency/website/internal/handlers"
	"github.com/eloqagency/website/internal/server"
	"github.com/eloqagency/website/internal/strategy"
	"github.com/eloqagency/website/pkg/logger"
	"github.com/eloqagency/website/pkg/tracing"
)

func main() {
	// .env.local overrides .env
	config.LoadDotEnv(".")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		logger.Module,
		config.Module,
		tracing.Module,

		strategy.Module,
		contact.Module,

		handlers.Module,
		server.Module,
	).Run()
}
