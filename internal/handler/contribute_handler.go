package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/logic"
)

// ContributeHandler 贡献处理器
type ContributeHandler struct {
	launchpad       *engine.Launchpad
	contributeLogic *logic.ContributeRecordLogic
}

// NewContributeHandler 创建贡献处理器
func NewContributeHandler(launchpad *engine.Launchpad, contributeLogic *logic.ContributeRecordLogic) *ContributeHandler {
	return &ContributeHandler{
		launchpad:       launchpad,
		contributeLogic: contributeLogic,
	}
}

// Contribute 向项目贡献资金
func (h *ContributeHandler) Contribute(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	projectId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	amount, ok := parseAmount(req.Amount)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "无效的贡献金额")
		return
	}

	if err := h.launchpad.Contribute(projectId, caller, amount); err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "贡献成功", gin.H{
		"project_id": projectId,
		"amount":     amount.String(),
	})
}

// GetProjectContributeRecords 获取项目贡献记录
func (h *ContributeHandler) GetProjectContributeRecords(c *gin.Context) {
	projectId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	records, total, err := h.contributeLogic.GetProjectContributeRecords(projectId, page, pageSize)
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

	SuccessResponse(c, http.StatusOK, "获取项目贡献记录成功", gin.H{
		"records":    records,
		"pagination": pagination,
	})
}

// GetContributeStats 获取贡献统计信息
func (h *ContributeHandler) GetContributeStats(c *gin.Context) {
	projectId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	stats, err := h.contributeLogic.GetContributeStats(projectId)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "获取贡献统计信息成功", gin.H{"stats": stats})
}
