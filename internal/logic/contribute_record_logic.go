package logic

import (
	"errors"
	"fmt"

	"github.com/printfjoby/Launchpad/internal/model"
	"gorm.io/gorm"
)

// ContributeRecordLogic 贡献记录业务逻辑
type ContributeRecordLogic struct {
	db *gorm.DB
}

// NewContributeRecordLogic 创建贡献记录业务逻辑
func NewContributeRecordLogic(db *gorm.DB) *ContributeRecordLogic {
	return &ContributeRecordLogic{db: db}
}

// CreateContributeRecord 创建贡献记录
func (c *ContributeRecordLogic) CreateContributeRecord(contributeRecord *model.ContributeRecordModel) error {
	// 验证贡献数据
	if err := c.validateContributeRecord(contributeRecord); err != nil {
		return err
	}

	// 检查项目镜像是否存在
	var project model.ProjectModel
	if err := c.db.First(&project, contributeRecord.ProjectId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("项目不存在")
		}
		return err
	}

	if err := c.db.Create(contributeRecord).Error; err != nil {
		return fmt.Errorf("创建贡献记录失败: %w", err)
	}

	return nil
}

// GetProjectContributeRecords 获取项目贡献记录
func (c *ContributeRecordLogic) GetProjectContributeRecords(projectId int64, page, pageSize int) ([]model.ContributeRecordModel, int64, error) {
	var contributions []model.ContributeRecordModel
	var total int64

	// 获取总数
	if err := c.db.Model(&model.ContributeRecordModel{}).Where("project_id = ?", projectId).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 获取数据
	offset := (page - 1) * pageSize
	if err := c.db.Where("project_id = ?", projectId).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&contributions).Error; err != nil {
		return nil, 0, err
	}

	return contributions, total, nil
}

// GetContributeStats 获取贡献统计信息
func (c *ContributeRecordLogic) GetContributeStats(projectId int64) (map[string]interface{}, error) {
	var totalContributions int64
	if err := c.db.Model(&model.ContributeRecordModel{}).Where("project_id = ?", projectId).Count(&totalContributions).Error; err != nil {
		return nil, fmt.Errorf("获取总贡献记录数失败: %w", err)
	}

	var uniqueContributors int64
	if err := c.db.Model(&model.ContributeRecordModel{}).Where("project_id = ?", projectId).Select("COUNT(DISTINCT address)").Scan(&uniqueContributors).Error; err != nil {
		return nil, fmt.Errorf("获取唯一贡献者数量失败: %w", err)
	}

	return map[string]interface{}{
		"total_contributions": totalContributions,
		"unique_contributors": uniqueContributors,
	}, nil
}

// validateContributeRecord 验证贡献数据
func (c *ContributeRecordLogic) validateContributeRecord(contributeRecord *model.ContributeRecordModel) error {
	if contributeRecord.ProjectId == 0 {
		return errors.New("项目ID不能为空")
	}
	if contributeRecord.Amount == "" {
		return errors.New("贡献金额不能为空")
	}
	if contributeRecord.Address == "" {
		return errors.New("贡献者地址不能为空")
	}
	return nil
}
