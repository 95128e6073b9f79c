package main

import (
	"time"

	"github.com/gabgmont/go-globe/internal/config"
	"github.com/gabgmont/go-globe/internal/database"
	"github.com/gabgmont/go-globe/internal/logger"
	"github.com/gabgmont/go-globe/internal/logic"
	"github.com/gabgmont/go-globe/internal/router"
	"github.com/gabgmont/go-globe/internal/task"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	level := logger.ParseLogLevel(cfg.Log.Level)
	if cfg.Log.Output == "file" {
		fileLogger, err := logger.NewWithFileRotation(level, cfg.Log.File)
		if err != nil {
			logger.Fatal("Failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(fileLogger)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化站点指标聚合，供路由和定时任务共享
	indicators := logic.NewIndicatorLogic(db, time.Duration(cfg.Task.IndicatorTTL)*time.Second)
	defer indicators.Release()

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, indicators, cfg)

	// 启动定时任务
	manager := task.Start(db, indicators, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
