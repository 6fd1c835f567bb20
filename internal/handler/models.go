package handler

import (
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/printfjoby/Launchpad/internal/engine"
)

// CallerHeader 调用方身份请求头，签名校验由上游网关完成
const CallerHeader = "X-Caller-Address"

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// 分页信息结构
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

// 请求模型

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	GoalAmount      string `json:"goal_amount" binding:"required"`
	DurationSeconds int64  `json:"duration_seconds" binding:"required"`
}

// ContributeRequest 贡献请求
type ContributeRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// CreateWithdrawRequestRequest 创建提款请求
type CreateWithdrawRequestRequest struct {
	ProjectId   uint64 `json:"project_id" binding:"required"`
	Description string `json:"description"`
	Amount      string `json:"amount" binding:"required"`
}

// 响应模型

// ProjectResponse 项目响应模型，来自引擎快照
type ProjectResponse struct {
	Id              uint64    `json:"id"`
	Creator         string    `json:"creator"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	GoalAmount      string    `json:"goalAmount"`
	RaisedAmount    string    `json:"raisedAmount"`
	WithdrawnAmount string    `json:"withdrawnAmount"`
	Deadline        time.Time `json:"deadline"`
	Status          string    `json:"status"`
}

// ToProjectResponse 引擎快照转响应模型
func ToProjectResponse(p engine.Project) ProjectResponse {
	return ProjectResponse{
		Id:              p.ID,
		Creator:         p.Creator.Hex(),
		Title:           p.Title,
		Description:     p.Description,
		GoalAmount:      p.GoalAmount.String(),
		RaisedAmount:    p.RaisedAmount.String(),
		WithdrawnAmount: p.WithdrawnAmount.String(),
		Deadline:        p.Deadline,
		Status:          p.Status.String(),
	}
}

// WithdrawRequestResponse 提款请求响应模型
type WithdrawRequestResponse struct {
	Id          uint64 `json:"id"`
	ProjectId   uint64 `json:"projectId"`
	Creator     string `json:"creator"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	VoteCount   string `json:"voteCount"`
	IsWithdrawn bool   `json:"isWithdrawn"`
}

// ToWithdrawRequestResponse 引擎快照转响应模型
func ToWithdrawRequestResponse(r engine.WithdrawRequest) WithdrawRequestResponse {
	return WithdrawRequestResponse{
		Id:          r.ID,
		ProjectId:   r.ProjectID,
		Creator:     r.Creator.Hex(),
		Description: r.Description,
		Amount:      r.Amount.String(),
		VoteCount:   r.VoteCount.String(),
		IsWithdrawn: r.IsWithdrawn,
	}
}

// callerAddress 解析调用方身份，缺失或非法时直接响应 401
func callerAddress(c *gin.Context) (common.Address, bool) {
	raw := c.GetHeader(CallerHeader)
	if !common.IsHexAddress(raw) {
		ErrorResponse(c, http.StatusUnauthorized, "无效的调用方地址")
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}

// parseAmount 解析十进制金额字符串
func parseAmount(raw string) (*big.Int, bool) {
	amount, ok := new(big.Int).SetString(raw, 10)
	return amount, ok
}
