package event

import (
	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/logic"
	"github.com/printfjoby/Launchpad/internal/model"
)

// EventRecorder 把每条引擎通知落为只追加的事件记录
type EventRecorder struct {
	eventLogic *logic.EventLogic
}

// NewEventRecorder 创建事件记录处理器
func NewEventRecorder(eventLogic *logic.EventLogic) *EventRecorder {
	return &EventRecorder{eventLogic: eventLogic}
}

// Name 处理器名称
func (r *EventRecorder) Name() string {
	return "event_recorder"
}

// Process 记录事件
func (r *EventRecorder) Process(n engine.Notification) error {
	return r.eventLogic.CreateEvent(&model.EventModel{
		EventType:    n.Type,
		ProjectId:    int64(n.ProjectID),
		RequestId:    int64(n.RequestID),
		ActorAddress: n.Actor.Hex(),
		Amount:       amountString(n),
		OccurredAt:   n.OccurredAt,
	})
}

// amountString 通知金额转十进制字符串，缺省为 0
func amountString(n engine.Notification) string {
	if n.Amount == nil {
		return "0"
	}
	return n.Amount.String()
}
