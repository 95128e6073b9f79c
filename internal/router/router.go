package router

import (
	"github.com/gabgmont/go-globe/internal/config"
	"github.com/gabgmont/go-globe/internal/handler"
	"github.com/gabgmont/go-globe/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, indicators *logic.IndicatorLogic, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "go-globe",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 宣教士申请相关路由
		applicationHandler := handler.NewApplicationHandler(db)
		applications := v1.Group("/applications")
		{
			applications.POST("", applicationHandler.SubmitApplication)
			applications.PUT("/:id/review", applicationHandler.ReviewApplication)
		}

		// 宣教士相关路由
		supportHandler := handler.NewSupportHandler(db, indicators)
		missionaries := v1.Group("/missionaries")
		{
			missionaries.GET("", applicationHandler.GetMissionaries)
			missionaries.GET("/:id/support", supportHandler.GetMissionarySupport)
		}

		// 宣教工场相关路由
		missionHandler := handler.NewMissionHandler(db)
		missions := v1.Group("/missions")
		{
			missions.POST("", missionHandler.CreateMission)
			missions.GET("", missionHandler.GetMissions)
		}

		// 项目相关路由
		projectHandler := handler.NewProjectHandler(db, cfg)
		contributionHandler := handler.NewContributionHandler(db, cfg, indicators)
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.GET("/:id/contributions", contributionHandler.GetProjectContributions)
			projects.GET("/:id/progress", contributionHandler.GetProjectProgress)
		}

		// 捐助相关路由
		contributions := v1.Group("/contributions")
		{
			contributions.POST("", contributionHandler.SubmitContribution)
			contributions.GET("/me", contributionHandler.GetMyContributions)
		}

		// 支持相关路由
		supports := v1.Group("/supports")
		{
			supports.POST("", supportHandler.CreateSupport)
			supports.DELETE("/:id", supportHandler.CancelSupport)
			supports.GET("/me", supportHandler.GetMySupports)
		}

		// 站点指标路由
		indicatorHandler := handler.NewIndicatorHandler(indicators)
		v1.GET("/indicators", indicatorHandler.GetIndicators)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-User-Id")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
