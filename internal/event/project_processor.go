package event

import (
	"fmt"

	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/logic"
	"github.com/printfjoby/Launchpad/internal/model"
)

// ProjectProcessor 项目镜像处理器，按引擎快照维护项目表
type ProjectProcessor struct {
	launchpad    *engine.Launchpad
	projectLogic *logic.ProjectLogic
}

// NewProjectProcessor 创建项目镜像处理器
func NewProjectProcessor(launchpad *engine.Launchpad, projectLogic *logic.ProjectLogic) *ProjectProcessor {
	return &ProjectProcessor{
		launchpad:    launchpad,
		projectLogic: projectLogic,
	}
}

// Name 处理器名称
func (p *ProjectProcessor) Name() string {
	return "project_processor"
}

// Process 处理项目相关通知
func (p *ProjectProcessor) Process(n engine.Notification) error {
	switch n.Type {
	case engine.EventProjectCreated:
		return p.createProject(n)
	case engine.EventContributed, engine.EventRefunded, engine.EventWithdrawn:
		return p.refreshFunding(n)
	default:
		return nil
	}
}

// createProject 落项目镜像记录
func (p *ProjectProcessor) createProject(n engine.Notification) error {
	snapshot, err := p.launchpad.GetProjectDetails(n.ProjectID)
	if err != nil {
		return fmt.Errorf("读取项目快照失败: %w", err)
	}

	return p.projectLogic.CreateProject(&model.ProjectModel{
		Id:              int64(snapshot.ID),
		Title:           snapshot.Title,
		Description:     snapshot.Description,
		CreatorAddress:  snapshot.Creator.Hex(),
		GoalAmount:      snapshot.GoalAmount.String(),
		RaisedAmount:    snapshot.RaisedAmount.String(),
		WithdrawnAmount: snapshot.WithdrawnAmount.String(),
		Deadline:        snapshot.Deadline,
		Status:          model.ProjectStatus(snapshot.Status.String()),
	})
}

// refreshFunding 按快照刷新资金字段
func (p *ProjectProcessor) refreshFunding(n engine.Notification) error {
	snapshot, err := p.launchpad.GetProjectDetails(n.ProjectID)
	if err != nil {
		return fmt.Errorf("读取项目快照失败: %w", err)
	}

	return p.projectLogic.UpdateFunding(
		int64(snapshot.ID),
		snapshot.RaisedAmount.String(),
		snapshot.WithdrawnAmount.String(),
		model.ProjectStatus(snapshot.Status.String()),
	)
}
