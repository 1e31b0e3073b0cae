package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"edurev/backend/config"
	"edurev/backend/global"
	"edurev/backend/initialize"
	"edurev/backend/server"
)

func main() {
	cfgPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("load config")
	}
	logFile, err := initialize.InitLogger(cfg.Log)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("open log file")
	}
	defer logFile.Close()

	if err := config.Watch(*cfgPath, func(next *config.Config) {
		initialize.SetLogLevel(next.Log.Level)
		global.Logger.Info().Str("level", next.Log.Level).Msg("config reloaded")
	}); err != nil {
		global.Logger.Warn().Err(err).Msg("config watch disabled")
	}

	app, err := initialize.Build(*cfg)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build app")
	}
	defer func() {
		if err := app.Close(); err != nil {
			global.Logger.Error().Err(err).Msg("close app")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewHTTPServer(cfg.HTTP, cfg.Addr(), app.Router)
	if err := server.Run(ctx, cfg.HTTP, srv); err != nil {
		global.Logger.Error().Err(err).Msg("http server")
	}
}
