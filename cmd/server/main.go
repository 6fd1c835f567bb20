package main

import (
	"github.com/gin-gonic/gin"
	"github.com/printfjoby/Launchpad/internal/config"
	"github.com/printfjoby/Launchpad/internal/database"
	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/event"
	"github.com/printfjoby/Launchpad/internal/logger"
	"github.com/printfjoby/Launchpad/internal/logic"
	"github.com/printfjoby/Launchpad/internal/router"
	"github.com/printfjoby/Launchpad/internal/task"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if err := logger.Init(cfg.Log); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化引擎，镜像处理器通过通知分发器消费引擎事件
	launchpad := engine.NewLaunchpad(engine.Policy{ApprovalPercent: cfg.Governance.ApprovalPercent}, nil, nil)

	dispatcher, err := event.NewDispatcher(cfg.Dispatcher.PoolSize,
		event.NewEventRecorder(logic.NewEventLogic(db)),
		event.NewProjectProcessor(launchpad, logic.NewProjectLogic(db)),
		event.NewContributeProcessor(logic.NewContributeRecordLogic(db)),
		event.NewRefundProcessor(logic.NewRefundRecordLogic(db)),
		event.NewWithdrawProcessor(launchpad, logic.NewWithdrawRequestLogic(db)),
	)
	if err != nil {
		logger.Fatal("Failed to create dispatcher: %v", err)
	}
	defer dispatcher.Close()

	launchpad.SetNotifier(dispatcher)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(launchpad, db)

	// 启动定时任务
	manager := task.Start(db, launchpad, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
