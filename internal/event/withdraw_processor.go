package event

import (
	"fmt"

	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/logic"
	"github.com/printfjoby/Launchpad/internal/model"
)

// WithdrawProcessor 提款治理事件处理器，维护提款请求和投票记录镜像
type WithdrawProcessor struct {
	launchpad     *engine.Launchpad
	withdrawLogic *logic.WithdrawRequestLogic
}

// NewWithdrawProcessor 创建提款治理事件处理器
func NewWithdrawProcessor(launchpad *engine.Launchpad, withdrawLogic *logic.WithdrawRequestLogic) *WithdrawProcessor {
	return &WithdrawProcessor{
		launchpad:     launchpad,
		withdrawLogic: withdrawLogic,
	}
}

// Name 处理器名称
func (p *WithdrawProcessor) Name() string {
	return "withdraw_processor"
}

// Process 处理提款相关通知
func (p *WithdrawProcessor) Process(n engine.Notification) error {
	switch n.Type {
	case engine.EventWithdrawRequestCreated:
		return p.createRequest(n)
	case engine.EventVoted:
		return p.recordVote(n)
	case engine.EventWithdrawn:
		return p.withdrawLogic.MarkWithdrawn(int64(n.RequestID))
	default:
		return nil
	}
}

// createRequest 落提款请求镜像记录
func (p *WithdrawProcessor) createRequest(n engine.Notification) error {
	snapshot, err := p.launchpad.GetWithdrawRequest(n.RequestID)
	if err != nil {
		return fmt.Errorf("读取提款请求快照失败: %w", err)
	}

	return p.withdrawLogic.CreateWithdrawRequest(&model.WithdrawRequestModel{
		Id:             int64(snapshot.ID),
		ProjectId:      int64(snapshot.ProjectID),
		CreatorAddress: snapshot.Creator.Hex(),
		Description:    snapshot.Description,
		Amount:         snapshot.Amount.String(),
		VoteCount:      snapshot.VoteCount.String(),
		IsWithdrawn:    snapshot.IsWithdrawn,
	})
}

// recordVote 落投票记录并刷新累计权重
func (p *WithdrawProcessor) recordVote(n engine.Notification) error {
	if err := p.withdrawLogic.CreateVoteRecord(&model.VoteRecordModel{
		ProjectId:    int64(n.ProjectID),
		RequestId:    int64(n.RequestID),
		VoterAddress: n.Actor.Hex(),
		Weight:       amountString(n),
	}); err != nil {
		return err
	}

	snapshot, err := p.launchpad.GetWithdrawRequest(n.RequestID)
	if err != nil {
		return fmt.Errorf("读取提款请求快照失败: %w", err)
	}

	return p.withdrawLogic.UpdateVoteCount(int64(snapshot.ID), snapshot.VoteCount.String())
}
