package handler

import (
	"net/http"
	"strconv"

	"github.com/gabgmont/go-globe/internal/logic"
	"github.com/gabgmont/go-globe/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationHandler 宣教士申请处理器
type ApplicationHandler struct {
	applicationLogic *logic.ApplicationLogic
}

// NewApplicationHandler 创建宣教士申请处理器
func NewApplicationHandler(db *gorm.DB) *ApplicationHandler {
	return &ApplicationHandler{
		applicationLogic: logic.NewApplicationLogic(db, logic.NewSupportLogic(db)),
	}
}

// SubmitApplication 提交宣教士申请
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	application := &model.MissionaryApplicationModel{
		Name:            req.Name,
		Description:     req.Description,
		CurrentLocation: req.CurrentLocation,
		WorkCategory:    req.WorkCategory,
		StartDate:       req.StartDate,
		PhotoURL:        req.PhotoURL,
	}

	if err := h.applicationLogic.SubmitApplication(currentUser(c), application); err != nil {
		respondError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "申请提交成功", application)
}

// ReviewApplication 审核宣教士申请
func (h *ApplicationHandler) ReviewApplication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的申请ID")
		return
	}

	var req ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	application, err := h.applicationLogic.ReviewApplication(id, *req.Approved)
	if err != nil {
		respondError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "审核完成", application)
}

// GetMissionaries 获取已批准的宣教士列表
func (h *ApplicationHandler) GetMissionaries(c *gin.Context) {
	missionaries, err := h.applicationLogic.GetMissionaries()
	if err != nil {
		respondError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", missionaries)
}
