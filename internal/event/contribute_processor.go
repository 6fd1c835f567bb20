package event

import (
	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/logger"
	"github.com/printfjoby/Launchpad/internal/logic"
	"github.com/printfjoby/Launchpad/internal/model"
)

// ContributeProcessor 贡献事件处理器
type ContributeProcessor struct {
	contributeLogic *logic.ContributeRecordLogic
}

// NewContributeProcessor 创建贡献事件处理器
func NewContributeProcessor(contributeLogic *logic.ContributeRecordLogic) *ContributeProcessor {
	return &ContributeProcessor{
		contributeLogic: contributeLogic,
	}
}

// Name 处理器名称
func (p *ContributeProcessor) Name() string {
	return "contribute_processor"
}

// Process 处理贡献事件
func (p *ContributeProcessor) Process(n engine.Notification) error {
	if n.Type != engine.EventContributed {
		return nil
	}

	contribution := model.ContributeRecordModel{
		ProjectId: int64(n.ProjectID),
		Address:   n.Actor.Hex(),
		Amount:    amountString(n),
	}

	if err := p.contributeLogic.CreateContributeRecord(&contribution); err != nil {
		return err
	}

	logger.Info("Processed contribution: %s wei from %s to project %d",
		contribution.Amount, contribution.Address, n.ProjectID)

	return nil
}
