package task

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/printfjoby/Launchpad/internal/config"
	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/logger"
	"github.com/printfjoby/Launchpad/internal/logic"
	"github.com/printfjoby/Launchpad/internal/model"
	"gorm.io/gorm"
)

// ProjectFinalizeJob 项目镜像状态修复任务
// 引擎状态总是实时推导，镜像表的 status 字段在截止时间越过后会落后，
// 该任务周期性按引擎快照刷新，避免列表查询长期显示 active
type ProjectFinalizeJob struct {
	config       *config.Config
	launchpad    *engine.Launchpad
	projectLogic *logic.ProjectLogic
}

// NewProjectFinalizeJob 创建项目镜像状态修复任务
func NewProjectFinalizeJob(db *gorm.DB, cfg *config.Config, launchpad *engine.Launchpad) *ProjectFinalizeJob {
	return &ProjectFinalizeJob{
		config:       cfg,
		launchpad:    launchpad,
		projectLogic: logic.NewProjectLogic(db),
	}
}

// GetName 获取任务名称
func (j *ProjectFinalizeJob) GetName() string {
	return "project_finalize_updater"
}

// GetSchedule 获取调度配置
func (j *ProjectFinalizeJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *ProjectFinalizeJob) Execute() {
	logger.Debug("Starting project finalize task")

	projects, err := j.projectLogic.FindExpiredActive(time.Now())
	if err != nil {
		logger.Error("Failed to fetch expired projects: %v", err)
		return
	}

	updatedCount := 0

	for _, project := range projects {
		snapshot, err := j.launchpad.GetProjectDetails(uint64(project.Id))
		if err != nil {
			logger.Error("Failed to read project %d from engine: %v", project.Id, err)
			continue
		}

		newStatus := model.ProjectStatus(snapshot.Status.String())
		if newStatus == model.ProjectStatusActive {
			continue
		}

		if err := j.projectLogic.UpdateFunding(
			project.Id,
			snapshot.RaisedAmount.String(),
			snapshot.WithdrawnAmount.String(),
			newStatus,
		); err != nil {
			logger.Error("Failed to finalize project %d: %v", project.Id, err)
			continue
		}

		logger.Info("Project %d finalized as %s: raised %s / goal %s",
			project.Id, newStatus, snapshot.RaisedAmount, snapshot.GoalAmount)
		updatedCount++
	}

	if updatedCount > 0 {
		logger.Info("Project finalize task updated %d projects", updatedCount)
	}
}
