package handler

import (
	"net/http"
	"strconv"

	"github.com/gabgmont/go-globe/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SupportHandler 宣教士支持处理器
type SupportHandler struct {
	supportLogic   *logic.SupportLogic
	indicatorLogic *logic.IndicatorLogic
}

// NewSupportHandler 创建宣教士支持处理器
func NewSupportHandler(db *gorm.DB, indicators *logic.IndicatorLogic) *SupportHandler {
	return &SupportHandler{
		supportLogic:   logic.NewSupportLogic(db),
		indicatorLogic: indicators,
	}
}

// CreateSupport 创建支持
func (h *SupportHandler) CreateSupport(c *gin.Context) {
	var req CreateSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	idempotencyKey, ok := parseIdempotencyKey(c, req.IdempotencyKey)
	if !ok {
		return
	}

	support, err := h.supportLogic.CreateSupport(
		currentUser(c), req.MissionaryId, req.Amount, req.IsRecurring, idempotencyKey)
	if err != nil {
		respondError(c, err)
		return
	}

	h.indicatorLogic.Invalidate()

	SuccessResponse(c, http.StatusCreated, "支持成功", support)
}

// CancelSupport 取消定期支持
func (h *SupportHandler) CancelSupport(c *gin.Context) {
	supportId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的支持记录ID")
		return
	}

	support, err := h.supportLogic.CancelSupport(supportId, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	h.indicatorLogic.Invalidate()

	SuccessResponse(c, http.StatusOK, "已取消支持", support)
}

// GetMissionarySupport 获取宣教士支持聚合
func (h *SupportHandler) GetMissionarySupport(c *gin.Context) {
	missionaryId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的宣教士ID")
		return
	}

	summary, err := h.supportLogic.AggregateMissionarySupport(missionaryId)
	if err != nil {
		respondError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", summary)
}

// GetMySupports 获取当前用户发起的支持记录
func (h *SupportHandler) GetMySupports(c *gin.Context) {
	userId := currentUser(c)
	if userId == "" {
		respondError(c, logic.ErrUnauthenticated)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	supports, total, err := h.supportLogic.GetUserSupports(userId, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": supports,
		"pagination": Pagination{
			Page:      page,
			PageSize:  pageSize,
			Total:     total,
			TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}
