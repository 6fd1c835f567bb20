package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/printfjoby/Launchpad/internal/engine"
	"github.com/printfjoby/Launchpad/internal/logic"
)

// WithdrawHandler 提款治理处理器
type WithdrawHandler struct {
	launchpad     *engine.Launchpad
	withdrawLogic *logic.WithdrawRequestLogic
}

// NewWithdrawHandler 创建提款治理处理器
func NewWithdrawHandler(launchpad *engine.Launchpad, withdrawLogic *logic.WithdrawRequestLogic) *WithdrawHandler {
	return &WithdrawHandler{
		launchpad:     launchpad,
		withdrawLogic: withdrawLogic,
	}
}

// CreateWithdrawRequest 创建提款请求，仅限项目创建者
func (h *WithdrawHandler) CreateWithdrawRequest(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req CreateWithdrawRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	amount, ok := parseAmount(req.Amount)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "无效的提款金额")
		return
	}

	requestId, err := h.launchpad.CreateWithdrawRequest(req.ProjectId, caller, req.Description, amount)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "提款请求创建成功", gin.H{"request_id": requestId})
}

// GetWithdrawRequest 获取提款请求详情
func (h *WithdrawHandler) GetWithdrawRequest(c *gin.Context) {
	requestId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的提款请求ID")
		return
	}

	request, err := h.launchpad.GetWithdrawRequest(requestId)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取提款请求成功", gin.H{"request": ToWithdrawRequestResponse(request)})
}

// GetProjectWithdrawRequests 获取项目提款请求列表
func (h *WithdrawHandler) GetProjectWithdrawRequests(c *gin.Context) {
	projectId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	requests, err := h.withdrawLogic.GetProjectWithdrawRequests(projectId)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "获取提款请求列表成功", gin.H{"requests": requests})
}

// VoteWithdrawRequest 为提款请求投票，仅限项目贡献者
func (h *WithdrawHandler) VoteWithdrawRequest(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	requestId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的提款请求ID")
		return
	}

	weight, err := h.launchpad.VoteWithdrawRequest(requestId, caller)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "投票成功", gin.H{
		"request_id": requestId,
		"weight":     weight.String(),
	})
}

// ReleaseWithdrawal 释放提款请求资金，仅限项目创建者
func (h *WithdrawHandler) ReleaseWithdrawal(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	requestId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的提款请求ID")
		return
	}

	amount, err := h.launchpad.ReleaseWithdrawal(requestId, caller)
	if err != nil {
		EngineErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "提款成功", gin.H{
		"request_id": requestId,
		"amount":     amount.String(),
	})
}

// GetRequestVoteRecords 获取提款请求投票记录
func (h *WithdrawHandler) GetRequestVoteRecords(c *gin.Context) {
	requestId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的提款请求ID")
		return
	}

	votes, err := h.withdrawLogic.GetRequestVoteRecords(requestId)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "获取投票记录成功", gin.H{"votes": votes})
}
