package model

import (
	"time"
)

// EventModel 引擎事件记录，只追加
type EventModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EventType    string    `json:"event_type" gorm:"not null;index"`
	ProjectId    int64     `json:"project_id" gorm:"index"`
	RequestId    int64     `json:"request_id"`
	ActorAddress string    `json:"actor_address"`
	Amount       string    `json:"amount"`
	OccurredAt   time.Time `json:"occurred_at" gorm:"not null"`
}

// TableName 自定义表名
func (EventModel) TableName() string {
	return "event"
}
