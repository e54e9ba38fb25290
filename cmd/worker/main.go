package main

import (
	"context"

	"cryptostatus/internal/bootstrap"
	"cryptostatus/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	log := logx.L()
	ctx := context.Background()
	app, cleanup, err := bootstrap.InitWorker(ctx)
	if err != nil {
		log.Fatal("init worker", zap.Error(err))
	}
	defer cleanup()
	if err := app.Run(ctx); err != nil {
		log.Fatal("worker exited", zap.Error(err))
	}
}
