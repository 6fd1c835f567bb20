package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/printfjoby/Launchpad/internal/logic"
)

// EventHandler 事件查询处理器
type EventHandler struct {
	eventLogic *logic.EventLogic
}

// NewEventHandler 创建事件查询处理器
func NewEventHandler(eventLogic *logic.EventLogic) *EventHandler {
	return &EventHandler{eventLogic: eventLogic}
}

// GetEvents 获取事件列表
func (h *EventHandler) GetEvents(c *gin.Context) {
	projectId, _ := strconv.ParseInt(c.DefaultQuery("project_id", "0"), 10, 64)
	eventType := c.Query("event_type")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	events, total, err := h.eventLogic.GetEvents(projectId, eventType, page, pageSize)
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

	SuccessResponse(c, http.StatusOK, "获取事件列表成功", gin.H{
		"events":     events,
		"pagination": pagination,
	})
}
