package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/logic"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	launchpad    *engine.Launchpad
	projectLogic *logic.ProjectLogic
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(launchpad *engine.Launchpad, projectLogic *logic.ProjectLogic) *ProjectHandler {
	return &ProjectHandler{
		launchpad:    launchpad,
		projectLogic: projectLogic,
	}
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	goalAmount, ok := parseAmount(req.GoalAmount)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "无效的目标金额")
		return
	}

	projectId, err := h.launchpad.CreateProject(
		caller,
		req.Title,
		req.Description,
		goalAmount,
		time.Duration(req.DurationSeconds)*time.Second,
	)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "项目创建成功", gin.H{"project_id": projectId})
}

// GetProject 获取单个项目详情，状态由引擎实时推导
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	project, err := h.launchpad.GetProjectDetails(projectId)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取项目详情成功", gin.H{"project": ToProjectResponse(project)})
}

// GetProjects 获取项目列表
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	projects, total, err := h.projectLogic.GetProjects(page, pageSize)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	pagination := Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}

	SuccessResponse(c, http.StatusOK, "获取项目列表成功", gin.H{
		"projects":   projects,
		"pagination": pagination,
	})
}

// GetProjectStats 获取项目统计信息
func (h *ProjectHandler) GetProjectStats(c *gin.Context) {
	projectId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	stats, err := h.projectLogic.GetProjectStats(projectId)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "获取项目统计信息成功", gin.H{"stats": stats})
}

// GetAllProjectStats 获取所有项目统计信息
func (h *ProjectHandler) GetAllProjectStats(c *gin.Context) {
	stats, err := h.projectLogic.GetAllProjectStats()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "获取统计信息成功", gin.H{"stats": stats})
}
