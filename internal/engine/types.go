package engine

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ProjectStatus 项目状态，由 raised/goal/deadline/now 推导，不单独存储
type ProjectStatus int

const (
	StatusActive ProjectStatus = iota // 进行中
	StatusSuccessful                  // 成功
	StatusFailed                      // 失败
)

func (s ProjectStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSuccessful:
		return "successful"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Project 项目详情快照，金额为副本，修改不影响引擎内部状态
type Project struct {
	ID              uint64
	Creator         common.Address
	Title           string
	Description     string
	GoalAmount      *big.Int
	Deadline        time.Time
	RaisedAmount    *big.Int
	WithdrawnAmount *big.Int
	Status          ProjectStatus
}

// WithdrawRequest 提款请求快照
type WithdrawRequest struct {
	ID          uint64
	ProjectID   uint64
	Creator     common.Address
	Description string
	Amount      *big.Int
	VoteCount   *big.Int
	IsWithdrawn bool
}

// project 项目内部状态，status 永不落盘
type project struct {
	id              uint64
	creator         common.Address
	title           string
	description     string
	goalAmount      *big.Int
	deadline        time.Time
	raisedAmount    *big.Int
	withdrawnAmount *big.Int
}

// deriveStatus 状态推导纯函数：达标即成功（终态），过期未达标即失败
func (p *project) deriveStatus(now time.Time) ProjectStatus {
	if p.raisedAmount.Cmp(p.goalAmount) >= 0 {
		return StatusSuccessful
	}
	if !now.Before(p.deadline) {
		return StatusFailed
	}
	return StatusActive
}

// snapshot 生成对外快照
func (p *project) snapshot(now time.Time) Project {
	return Project{
		ID:              p.id,
		Creator:         p.creator,
		Title:           p.title,
		Description:     p.description,
		GoalAmount:      new(big.Int).Set(p.goalAmount),
		Deadline:        p.deadline,
		RaisedAmount:    new(big.Int).Set(p.raisedAmount),
		WithdrawnAmount: new(big.Int).Set(p.withdrawnAmount),
		Status:          p.deriveStatus(now),
	}
}

// withdrawRequest 提款请求内部状态
type withdrawRequest struct {
	id          uint64
	projectID   uint64
	creator     common.Address
	description string
	amount      *big.Int
	voteCount   *big.Int
	isWithdrawn bool
}

func (r *withdrawRequest) snapshot() WithdrawRequest {
	return WithdrawRequest{
		ID:          r.id,
		ProjectID:   r.projectID,
		Creator:     r.creator,
		Description: r.description,
		Amount:      new(big.Int).Set(r.amount),
		VoteCount:   new(big.Int).Set(r.voteCount),
		IsWithdrawn: r.isWithdrawn,
	}
}
