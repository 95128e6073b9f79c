package logic

import (
	"errors"
	"fmt"

	"github.com/gabgmont/go-globe/internal/model"
	"gorm.io/gorm"
)

// MissionLogic 宣教工场业务逻辑
type MissionLogic struct {
	db *gorm.DB
}

// NewMissionLogic 创建宣教工场业务逻辑
func NewMissionLogic(db *gorm.DB) *MissionLogic {
	return &MissionLogic{db: db}
}

// CreateMission 创建宣教工场
// 发起人必须持有一份已批准的宣教士申请。
func (m *MissionLogic) CreateMission(userId string, mission *model.MissionModel) error {
	if userId == "" {
		return ErrUnauthenticated
	}
	if mission.Name == "" {
		return errors.New("工场名称不能为空")
	}
	if mission.Location == "" {
		return errors.New("所在地不能为空")
	}

	var application model.MissionaryApplicationModel
	if err := m.db.First(&application, mission.MissionaryApplicationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApplicationNotFound
		}
		return fmt.Errorf("查询申请失败: %w", err)
	}
	if application.UserId != userId {
		return ErrForbidden
	}
	if application.Status != model.ApplicationStatusApproved {
		return ErrApplicationNotApproved
	}

	mission.UserId = userId

	if err := m.db.Create(mission).Error; err != nil {
		return fmt.Errorf("创建宣教工场失败: %w", err)
	}

	return nil
}

// GetMissions 获取宣教工场列表
func (m *MissionLogic) GetMissions() ([]model.MissionModel, error) {
	var missions []model.MissionModel
	if err := m.db.Order("created_at DESC").Find(&missions).Error; err != nil {
		return nil, fmt.Errorf("获取宣教工场列表失败: %w", err)
	}
	return missions, nil
}
