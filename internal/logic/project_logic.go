package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/printfjoby/Launchpad/internal/model"
	"gorm.io/gorm"
)

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	db *gorm.DB
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(db *gorm.DB) *ProjectLogic {
	return &ProjectLogic{db: db}
}

// CreateProject 创建项目镜像记录
func (p *ProjectLogic) CreateProject(project *model.ProjectModel) error {
	// 验证项目数据
	if err := p.validateProject(project); err != nil {
		return err
	}

	if err := p.db.Create(project).Error; err != nil {
		return fmt.Errorf("创建项目记录失败: %w", err)
	}

	return nil
}

// UpdateFunding 按引擎快照刷新项目资金字段和状态
func (p *ProjectLogic) UpdateFunding(projectId int64, raised, withdrawn string, status model.ProjectStatus) error {
	result := p.db.Model(&model.ProjectModel{}).Where("id = ?", projectId).Updates(map[string]interface{}{
		"raised_amount":    raised,
		"withdrawn_amount": withdrawn,
		"status":           status,
	})
	if result.Error != nil {
		return fmt.Errorf("更新项目资金失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("项目不存在")
	}
	return nil
}

// UpdateStatus 刷新项目状态
func (p *ProjectLogic) UpdateStatus(projectId int64, status model.ProjectStatus) error {
	if err := p.db.Model(&model.ProjectModel{}).Where("id = ?", projectId).Update("status", status).Error; err != nil {
		return fmt.Errorf("更新项目状态失败: %w", err)
	}
	return nil
}

// GetProjects 获取项目列表
func (p *ProjectLogic) GetProjects(page, pageSize int) ([]model.ProjectModel, int64, error) {
	var projects []model.ProjectModel
	var total int64

	if err := p.db.Model(&model.ProjectModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("获取项目总数失败: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := p.db.Offset(offset).Limit(pageSize).Order("id DESC").Find(&projects).Error; err != nil {
		return nil, 0, fmt.Errorf("获取项目列表失败: %w", err)
	}

	return projects, total, nil
}

// GetProject 获取项目详情
func (p *ProjectLogic) GetProject(id int64) (*model.ProjectModel, error) {
	var project model.ProjectModel
	if err := p.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("项目不存在")
		}
		return nil, fmt.Errorf("获取项目详情失败: %w", err)
	}

	return &project, nil
}

// FindExpiredActive 查找截止时间已过但镜像状态仍为进行中的项目
func (p *ProjectLogic) FindExpiredActive(now time.Time) ([]model.ProjectModel, error) {
	var projects []model.ProjectModel
	if err := p.db.Where("status = ? AND deadline <= ?", model.ProjectStatusActive, now).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("查找过期项目失败: %w", err)
	}
	return projects, nil
}

// GetProjectStats 获取项目统计信息
func (p *ProjectLogic) GetProjectStats(id int64) (map[string]interface{}, error) {
	project, err := p.GetProject(id)
	if err != nil {
		return nil, err
	}

	var contributorCount int64
	if err := p.db.Model(&model.ContributeRecordModel{}).
		Where("project_id = ?", id).
		Distinct("address").
		Count(&contributorCount).Error; err != nil {
		return nil, fmt.Errorf("获取贡献者数量失败: %w", err)
	}

	var contributionCount int64
	if err := p.db.Model(&model.ContributeRecordModel{}).
		Where("project_id = ?", id).
		Count(&contributionCount).Error; err != nil {
		return nil, fmt.Errorf("获取贡献记录数失败: %w", err)
	}

	// 计算剩余时间
	remainingTime := time.Duration(0)
	if project.Status == model.ProjectStatusActive && time.Now().Before(project.Deadline) {
		remainingTime = time.Until(project.Deadline)
	}

	return map[string]interface{}{
		"project_id":         project.Id,
		"goal_amount":        project.GoalAmount,
		"raised_amount":      project.RaisedAmount,
		"withdrawn_amount":   project.WithdrawnAmount,
		"status":             project.Status,
		"deadline":           project.Deadline,
		"remaining_time":     remainingTime.String(),
		"contributor_count":  contributorCount,
		"contribution_count": contributionCount,
	}, nil
}

// GetAllProjectStats 获取所有项目的统计信息
func (p *ProjectLogic) GetAllProjectStats() (map[string]interface{}, error) {
	var totalProjects int64
	p.db.Model(&model.ProjectModel{}).Count(&totalProjects)

	var activeProjects int64
	p.db.Model(&model.ProjectModel{}).
		Where("status = ?", model.ProjectStatusActive).
		Count(&activeProjects)

	var successfulProjects int64
	p.db.Model(&model.ProjectModel{}).
		Where("status = ?", model.ProjectStatusSuccessful).
		Count(&successfulProjects)

	var failedProjects int64
	p.db.Model(&model.ProjectModel{}).
		Where("status = ?", model.ProjectStatusFailed).
		Count(&failedProjects)

	// 统计总贡献者数量（去重）
	var totalContributors int64
	p.db.Model(&model.ContributeRecordModel{}).
		Distinct("address").
		Count(&totalContributors)

	return map[string]interface{}{
		"totalProjects":      totalProjects,
		"activeProjects":     activeProjects,
		"successfulProjects": successfulProjects,
		"failedProjects":     failedProjects,
		"totalInvestors":     totalContributors,
	}, nil
}

// validateProject 验证项目数据
func (p *ProjectLogic) validateProject(project *model.ProjectModel) error {
	if project.Id == 0 {
		return errors.New("项目ID不能为空")
	}
	if project.CreatorAddress == "" {
		return errors.New("创建者地址不能为空")
	}
	if project.GoalAmount == "" {
		return errors.New("目标金额不能为空")
	}
	if project.Deadline.IsZero() {
		return errors.New("截止时间不能为空")
	}
	return nil
}
