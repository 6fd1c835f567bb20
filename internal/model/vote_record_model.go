package model

import (
	"time"
)

// VoteRecordModel 投票记录，投票标记按项目一次性，跨该项目所有提款请求
type VoteRecordModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectId    int64  `json:"project_id" gorm:"not null;index"`
	RequestId    int64  `json:"request_id" gorm:"not null;index"`
	VoterAddress string `json:"voter_address" gorm:"not null"`
	Weight       string `json:"weight" gorm:"not null"`
}

// TableName 自定义表名
func (VoteRecordModel) TableName() string {
	return "vote_record"
}
