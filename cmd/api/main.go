package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campusconnect/campus-scheduler/internal/cache"
	"github.com/campusconnect/campus-scheduler/internal/config"
	dbpkg "github.com/campusconnect/campus-scheduler/internal/db"
	"github.com/campusconnect/campus-scheduler/internal/logger"
	"github.com/campusconnect/campus-scheduler/internal/middleware"
	"github.com/campusconnect/campus-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedis(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
