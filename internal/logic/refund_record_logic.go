package logic

import (
	"errors"
	"fmt"

	"github.com/printfjoby/Launchpad/internal/model"
	"gorm.io/gorm"
)

// RefundRecordLogic 退款记录业务逻辑
type RefundRecordLogic struct {
	db *gorm.DB
}

// NewRefundRecordLogic 创建退款记录业务逻辑
func NewRefundRecordLogic(db *gorm.DB) *RefundRecordLogic {
	return &RefundRecordLogic{db: db}
}

// CreateRefundRecord 创建退款记录
func (r *RefundRecordLogic) CreateRefundRecord(refundRecord *model.RefundRecordModel) error {
	// 验证退款数据
	if err := r.validateRefundRecord(refundRecord); err != nil {
		return err
	}

	// 检查项目镜像是否存在
	var project model.ProjectModel
	if err := r.db.First(&project, refundRecord.ProjectId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("项目不存在")
		}
		return err
	}

	// 引擎保证每个地址只退一次，重复记录说明镜像已落后
	var existingRefund model.RefundRecordModel
	if err := r.db.Where("project_id = ? AND address = ?", refundRecord.ProjectId, refundRecord.Address).First(&existingRefund).Error; err == nil {
		return errors.New("该地址已经退款")
	}

	if err := r.db.Create(refundRecord).Error; err != nil {
		return fmt.Errorf("创建退款记录失败: %w", err)
	}

	return nil
}

// GetProjectRefundRecords 获取项目退款记录
func (r *RefundRecordLogic) GetProjectRefundRecords(projectId int64, page, pageSize int) ([]model.RefundRecordModel, int64, error) {
	var refunds []model.RefundRecordModel
	var total int64

	if err := r.db.Model(&model.RefundRecordModel{}).Where("project_id = ?", projectId).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.Where("project_id = ?", projectId).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&refunds).Error; err != nil {
		return nil, 0, err
	}

	return refunds, total, nil
}

// validateRefundRecord 验证退款数据
func (r *RefundRecordLogic) validateRefundRecord(refundRecord *model.RefundRecordModel) error {
	if refundRecord.ProjectId == 0 {
		return errors.New("项目ID不能为空")
	}
	if refundRecord.Address == "" {
		return errors.New("退款地址不能为空")
	}
	if refundRecord.Amount == "" {
		return errors.New("退款金额不能为空")
	}
	return nil
}
