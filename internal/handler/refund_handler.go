package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/logic"
)

// RefundHandler 退款处理器
type RefundHandler struct {
	launchpad   *engine.Launchpad
	refundLogic *logic.RefundRecordLogic
}

// NewRefundHandler 创建退款处理器
func NewRefundHandler(launchpad *engine.Launchpad, refundLogic *logic.RefundRecordLogic) *RefundHandler {
	return &RefundHandler{
		launchpad:   launchpad,
		refundLogic: refundLogic,
	}
}

// ClaimRefund 项目失败后申领退款
func (h *RefundHandler) ClaimRefund(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	projectId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	amount, err := h.launchpad.ClaimRefund(projectId, caller)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "退款成功", gin.H{
		"project_id": projectId,
		"amount":     amount.String(),
	})
}

// GetProjectRefundRecords 获取项目退款记录
func (h *RefundHandler) GetProjectRefundRecords(c *gin.Context) {
	projectId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	records, total, err := h.refundLogic.GetProjectRefundRecords(projectId, page, pageSize)
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

	SuccessResponse(c, http.StatusOK, "获取项目退款记录成功", gin.H{
		"records":    records,
		"pagination": pagination,
	})
}
