package model

import (
	"time"
)

// WithdrawRequestModel 提款请求镜像，Id 为引擎分配的全局请求编号（从 1 开始）
type WithdrawRequestModel struct {
	Id        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectId      int64  `json:"project_id" gorm:"not null;index"`
	CreatorAddress string `json:"creator_address" gorm:"not null"`
	Description    string `json:"description" gorm:"type:text"`
	Amount         string `json:"amount" gorm:"not null"`
	VoteCount      string `json:"vote_count" gorm:"default:'0'"`
	IsWithdrawn    bool   `json:"is_withdrawn" gorm:"default:false"`
}

// TableName 自定义表名
func (WithdrawRequestModel) TableName() string {
	return "withdraw_request"
}
