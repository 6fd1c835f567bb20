package router

import (
	"github.com/gin-gonic/gin"
	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/handler"
	"github.com/printfjoby/Launchpad/internal/logic"
	"gorm.io/gorm"
)

func Setup(launchpad *engine.Launchpad, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "launchpad",
		})
	})

	projectHandler := handler.NewProjectHandler(launchpad, logic.NewProjectLogic(db))
	contributeHandler := handler.NewContributeHandler(launchpad, logic.NewContributeRecordLogic(db))
	refundHandler := handler.NewRefundHandler(launchpad, logic.NewRefundRecordLogic(db))
	withdrawHandler := handler.NewWithdrawHandler(launchpad, logic.NewWithdrawRequestLogic(db))
	eventHandler := handler.NewEventHandler(logic.NewEventLogic(db))

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 项目相关路由
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/stats", projectHandler.GetAllProjectStats)
			projects.GET("/:id", projectHandler.GetProject)
			projects.GET("/:id/stats", projectHandler.GetProjectStats)
			projects.POST("/:id/contributions", contributeHandler.Contribute)
			projects.GET("/:id/contributions", contributeHandler.GetProjectContributeRecords)
			projects.GET("/:id/contributions/stats", contributeHandler.GetContributeStats)
			projects.POST("/:id/refunds", refundHandler.ClaimRefund)
			projects.GET("/:id/refunds", refundHandler.GetProjectRefundRecords)
			projects.GET("/:id/withdraw-requests", withdrawHandler.GetProjectWithdrawRequests)
		}

		// 提款请求相关路由
		requests := v1.Group("/withdraw-requests")
		{
			requests.POST("", withdrawHandler.CreateWithdrawRequest)
			requests.GET("/:id", withdrawHandler.GetWithdrawRequest)
			requests.POST("/:id/votes", withdrawHandler.VoteWithdrawRequest)
			requests.GET("/:id/votes", withdrawHandler.GetRequestVoteRecords)
			requests.POST("/:id/withdraw", withdrawHandler.ReleaseWithdrawal)
		}

		// 事件相关路由
		v1.GET("/events", eventHandler.GetEvents)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Caller-Address")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
