package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"isavralabel.com/sikus/internal/service"
	"isavralabel.com/sikus/pkg/response"
)

type StatHandler struct {
	statService service.StatService
}

func NewStatHandler(statService service.StatService) *StatHandler {
	return &StatHandler{statService: statService}
}

func (h *StatHandler) GetStats(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	role, err := response.GetRole(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	stats, err := h.statService.GetDashboardStats(c.Request.Context(), userID, role)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
