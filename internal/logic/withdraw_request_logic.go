package logic

import (
	"errors"
	"fmt"

	"github.com/printfjoby/Launchpad/internal/model"
	"gorm.io/gorm"
)

// WithdrawRequestLogic 提款请求业务逻辑
type WithdrawRequestLogic struct {
	db *gorm.DB
}

// NewWithdrawRequestLogic 创建提款请求业务逻辑
func NewWithdrawRequestLogic(db *gorm.DB) *WithdrawRequestLogic {
	return &WithdrawRequestLogic{db: db}
}

// CreateWithdrawRequest 创建提款请求镜像记录
func (w *WithdrawRequestLogic) CreateWithdrawRequest(request *model.WithdrawRequestModel) error {
	if request.Id == 0 {
		return errors.New("请求ID不能为空")
	}
	if request.ProjectId == 0 {
		return errors.New("项目ID不能为空")
	}
	if request.Amount == "" {
		return errors.New("提款金额不能为空")
	}

	if err := w.db.Create(request).Error; err != nil {
		return fmt.Errorf("创建提款请求记录失败: %w", err)
	}

	return nil
}

// GetWithdrawRequest 获取提款请求详情
func (w *WithdrawRequestLogic) GetWithdrawRequest(id int64) (*model.WithdrawRequestModel, error) {
	var request model.WithdrawRequestModel
	if err := w.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("提款请求不存在")
		}
		return nil, fmt.Errorf("获取提款请求失败: %w", err)
	}

	return &request, nil
}

// GetProjectWithdrawRequests 获取项目提款请求列表
func (w *WithdrawRequestLogic) GetProjectWithdrawRequests(projectId int64) ([]model.WithdrawRequestModel, error) {
	var requests []model.WithdrawRequestModel
	if err := w.db.Where("project_id = ?", projectId).Order("id ASC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("获取提款请求列表失败: %w", err)
	}

	return requests, nil
}

// UpdateVoteCount 刷新提款请求投票权重
func (w *WithdrawRequestLogic) UpdateVoteCount(id int64, voteCount string) error {
	if err := w.db.Model(&model.WithdrawRequestModel{}).Where("id = ?", id).Update("vote_count", voteCount).Error; err != nil {
		return fmt.Errorf("更新投票权重失败: %w", err)
	}
	return nil
}

// MarkWithdrawn 标记提款请求已释放
func (w *WithdrawRequestLogic) MarkWithdrawn(id int64) error {
	if err := w.db.Model(&model.WithdrawRequestModel{}).Where("id = ?", id).Update("is_withdrawn", true).Error; err != nil {
		return fmt.Errorf("标记提款完成失败: %w", err)
	}
	return nil
}

// CreateVoteRecord 创建投票记录
func (w *WithdrawRequestLogic) CreateVoteRecord(vote *model.VoteRecordModel) error {
	if vote.ProjectId == 0 || vote.RequestId == 0 {
		return errors.New("项目ID和请求ID不能为空")
	}
	if vote.VoterAddress == "" {
		return errors.New("投票地址不能为空")
	}

	if err := w.db.Create(vote).Error; err != nil {
		return fmt.Errorf("创建投票记录失败: %w", err)
	}

	return nil
}

// GetRequestVoteRecords 获取提款请求投票记录
func (w *WithdrawRequestLogic) GetRequestVoteRecords(requestId int64) ([]model.VoteRecordModel, error) {
	var votes []model.VoteRecordModel
	if err := w.db.Where("request_id = ?", requestId).Order("id ASC").Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("获取投票记录失败: %w", err)
	}

	return votes, nil
}
