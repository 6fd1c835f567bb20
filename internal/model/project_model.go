package model

import (
	"time"
)

// ProjectModel 众筹项目镜像，Id 为引擎分配的项目编号（从 1 开始）
// 金额为 wei 级大整数，入库存十进制字符串
type ProjectModel struct {
	Id        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`

	// 创建者信息
	CreatorAddress string `json:"creator_address" gorm:"not null;index"`

	// 众筹信息
	GoalAmount      string `json:"goal_amount" gorm:"not null"`
	RaisedAmount    string `json:"raised_amount" gorm:"default:'0'"`
	WithdrawnAmount string `json:"withdrawn_amount" gorm:"default:'0'"`

	// 时间信息
	Deadline time.Time `json:"deadline" gorm:"not null"`

	// 状态
	Status ProjectStatus `json:"status" gorm:"default:'active'"`
}

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusActive     ProjectStatus = "active"     // 进行中
	ProjectStatusSuccessful ProjectStatus = "successful" // 成功
	ProjectStatusFailed     ProjectStatus = "failed"     // 失败
)

// TableName 自定义表名
func (ProjectModel) TableName() string {
	return "project"
}
