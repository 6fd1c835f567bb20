package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/printfjoby/Launchpad/internal/engine"
)

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// EngineErrorResponse 引擎错误响应，带机器可读错误码
func EngineErrorResponse(c *gin.Context, err error) {
	var engineErr *engine.Error
	if !errors.As(err, &engineErr) {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(statusForCode(engineErr.Code), Response{
		Success: false,
		Code:    string(engineErr.Code),
		Message: engineErr.Message,
		Data:    nil,
	})
}

// statusForCode 引擎错误码映射到HTTP状态码
func statusForCode(code engine.Code) int {
	switch code {
	case engine.CodeNotFound:
		return http.StatusNotFound
	case engine.CodeUnauthorized:
		return http.StatusForbidden
	case engine.CodeInvalidInput:
		return http.StatusBadRequest
	case engine.CodeAlreadyVoted, engine.CodeAlreadyWithdrawn:
		return http.StatusConflict
	default:
		// 状态守卫和余额类失败
		return http.StatusUnprocessableEntity
	}
}
