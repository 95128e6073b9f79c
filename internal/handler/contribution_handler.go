package handler

import (
	"net/http"
	"strconv"

	"github.com/gabgmont/go-globe/internal/config"
	"github.com/gabgmont/go-globe/internal/logic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContributionHandler 捐助记录处理器
type ContributionHandler struct {
	contributionLogic *logic.ContributionLogic
	indicatorLogic    *logic.IndicatorLogic
	defaultPayment    string
}

// NewContributionHandler 创建捐助记录处理器
func NewContributionHandler(db *gorm.DB, cfg *config.Config, indicators *logic.IndicatorLogic) *ContributionHandler {
	return &ContributionHandler{
		contributionLogic: logic.NewContributionLogic(db, decimal.NewFromFloat(cfg.Funding.MinContribution)),
		indicatorLogic:    indicators,
		defaultPayment:    cfg.Funding.DefaultPaymentMethod,
	}
}

// SubmitContribution 提交捐助
func (h *ContributionHandler) SubmitContribution(c *gin.Context) {
	var req SubmitContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	idempotencyKey, ok := parseIdempotencyKey(c, req.IdempotencyKey)
	if !ok {
		return
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = h.defaultPayment
	}

	contribution, err := h.contributionLogic.SubmitContribution(
		currentUser(c), req.ProjectId, req.Amount, paymentMethod, idempotencyKey)
	if err != nil {
		respondError(c, err)
		return
	}

	// 筹款总额变化，站点指标缓存失效
	h.indicatorLogic.Invalidate()

	SuccessResponse(c, http.StatusCreated, "捐助成功", contribution)
}

// GetProjectContributions 获取项目捐助记录
func (h *ContributionHandler) GetProjectContributions(c *gin.Context) {
	projectId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	records, total, err := h.contributionLogic.GetProjectContributions(projectId, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": records,
		"pagination": Pagination{
			Page:      page,
			PageSize:  pageSize,
			Total:     total,
			TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}

// GetProjectProgress 获取项目筹款进度
func (h *ContributionHandler) GetProjectProgress(c *gin.Context) {
	projectId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	progress, err := h.contributionLogic.AggregateProjectProgress(projectId)
	if err != nil {
		respondError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", progress)
}

// GetMyContributions 获取当前用户的捐助记录
func (h *ContributionHandler) GetMyContributions(c *gin.Context) {
	userId := currentUser(c)
	if userId == "" {
		respondError(c, logic.ErrUnauthenticated)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	records, total, err := h.contributionLogic.GetUserContributions(userId, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": records,
		"pagination": Pagination{
			Page:      page,
			PageSize:  pageSize,
			Total:     total,
			TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}

// parseIdempotencyKey 校验客户端幂等键，必须为UUID格式；未提供时返回nil
func parseIdempotencyKey(c *gin.Context, key string) (*string, bool) {
	if key == "" {
		return nil, true
	}
	if _, err := uuid.Parse(key); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的幂等键，必须为UUID")
		return nil, false
	}
	return &key, true
}
