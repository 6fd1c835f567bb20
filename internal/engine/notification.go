package engine

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// 通知类型，每个成功的写操作恰好发出一条
const (
	EventProjectCreated         = "ProjectCreated"
	EventContributed            = "Contributed"
	EventRefunded               = "Refunded"
	EventWithdrawRequestCreated = "WithdrawRequestCreated"
	EventVoted                  = "Voted"
	EventWithdrawn              = "Withdrawn"
)

// Notification 状态变更通知，发出即忘，回传失败不影响引擎状态
type Notification struct {
	Type       string         `json:"type"`
	ProjectID  uint64         `json:"project_id"`
	RequestID  uint64         `json:"request_id,omitempty"`
	Actor      common.Address `json:"actor"`
	Amount     *big.Int       `json:"amount,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Notifier 通知接收方
type Notifier interface {
	Notify(n Notification)
}

type noopNotifier struct{}

func (noopNotifier) Notify(Notification) {}
