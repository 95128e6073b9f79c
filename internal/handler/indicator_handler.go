package handler

import (
	"net/http"

	"github.com/gabgmont/go-globe/internal/logic"
	"github.com/gin-gonic/gin"
)

// IndicatorHandler 站点指标处理器
type IndicatorHandler struct {
	indicatorLogic *logic.IndicatorLogic
}

// NewIndicatorHandler 创建站点指标处理器
func NewIndicatorHandler(indicators *logic.IndicatorLogic) *IndicatorHandler {
	return &IndicatorHandler{indicatorLogic: indicators}
}

// GetIndicators 获取站点指标
func (h *IndicatorHandler) GetIndicators(c *gin.Context) {
	indicators, err := h.indicatorLogic.ComputeIndicators()
	if err != nil {
		respondError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", indicators)
}
