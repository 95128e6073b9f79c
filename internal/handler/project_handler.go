package handler

import (
	"net/http"
	"strconv"

	"github.com/gabgmont/go-globe/internal/config"
	"github.com/gabgmont/go-globe/internal/logic"
	"github.com/gabgmont/go-globe/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(db *gorm.DB, cfg *config.Config) *ProjectHandler {
	contributionLogic := logic.NewContributionLogic(db, decimal.NewFromFloat(cfg.Funding.MinContribution))
	return &ProjectHandler{
		projectLogic: logic.NewProjectLogic(db, contributionLogic),
	}
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	project := &model.ProjectModel{
		MissionId:     req.MissionId,
		Name:          req.Name,
		Description:   req.Description,
		ObjectiveType: model.ObjectiveType(req.ObjectiveType),
		FinancialGoal: req.FinancialGoal,
		MaterialGoal:  req.MaterialGoal,
		ImageURL:      req.ImageURL,
	}

	if err := h.projectLogic.CreateProject(currentUser(c), project); err != nil {
		respondError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "项目创建成功", project)
}

// GetProjects 获取项目列表
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectLogic.GetProjects()
	if err != nil {
		respondError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", projects)
}

// GetProject 获取项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	project, err := h.projectLogic.GetProject(id)
	if err != nil {
		respondError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", project)
}
