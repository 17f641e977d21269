package main

import (
	"context"
	"os"

	"classkeeper/internal/app/server"
	"classkeeper/internal/app/server/config"
	"classkeeper/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	app, err := server.NewApp(cfg, log)
	if err != nil {
		log.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
