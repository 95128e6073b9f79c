package handler

import (
	"net/http"

	"github.com/gabgmont/go-globe/internal/logic"
	"github.com/gabgmont/go-globe/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MissionHandler 宣教工场处理器
type MissionHandler struct {
	missionLogic *logic.MissionLogic
}

// NewMissionHandler 创建宣教工场处理器
func NewMissionHandler(db *gorm.DB) *MissionHandler {
	return &MissionHandler{missionLogic: logic.NewMissionLogic(db)}
}

// CreateMission 创建宣教工场
func (h *MissionHandler) CreateMission(c *gin.Context) {
	var req CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	mission := &model.MissionModel{
		MissionaryApplicationId: req.MissionaryApplicationId,
		Name:                    req.Name,
		Description:             req.Description,
		Location:                req.Location,
		Category:                req.Category,
	}

	if err := h.missionLogic.CreateMission(currentUser(c), mission); err != nil {
		respondError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "宣教工场创建成功", mission)
}

// GetMissions 获取宣教工场列表
func (h *MissionHandler) GetMissions(c *gin.Context) {
	missions, err := h.missionLogic.GetMissions()
	if err != nil {
		respondError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", missions)
}
