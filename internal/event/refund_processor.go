package event

import (
	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/logger"
	"github.com/printfjoby/Launchpad/internal/logic"
	"github.com/printfjoby/Launchpad/internal/model"
)

// RefundProcessor 退款事件处理器
type RefundProcessor struct {
	refundLogic *logic.RefundRecordLogic
}

// NewRefundProcessor 创建退款事件处理器
func NewRefundProcessor(refundLogic *logic.RefundRecordLogic) *RefundProcessor {
	return &RefundProcessor{
		refundLogic: refundLogic,
	}
}

// Name 处理器名称
func (p *RefundProcessor) Name() string {
	return "refund_processor"
}

// Process 处理退款事件
func (p *RefundProcessor) Process(n engine.Notification) error {
	if n.Type != engine.EventRefunded {
		return nil
	}

	refund := model.RefundRecordModel{
		ProjectId: int64(n.ProjectID),
		Address:   n.Actor.Hex(),
		Amount:    amountString(n),
	}

	if err := p.refundLogic.CreateRefundRecord(&refund); err != nil {
		return err
	}

	logger.Info("Processed refund: %s wei to %s from project %d",
		refund.Amount, refund.Address, n.ProjectID)

	return nil
}
