package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tvstore/catalog/configs"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}

	var log *zap.Logger
	if cfg.App.AppEnv == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	engine, err := configs.BuildEngine(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("failed to build catalog engine", zap.Error(err))
	}

	router := gin.New()
	configs.SetupRoutes(router, engine, log)

	log.Info("server starting", zap.String("port", cfg.App.AppPort))
	if err := router.Run(":" + cfg.App.AppPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
