package logic

import (
	"errors"
	"fmt"

	"github.com/gabgmont/go-globe/internal/model"
	"gorm.io/gorm"
)

// ApplicationLogic 宣教士申请业务逻辑
type ApplicationLogic struct {
	db           *gorm.DB
	supportLogic *SupportLogic
}

// Missionary 已批准的宣教士及其支持情况
type Missionary struct {
	model.MissionaryApplicationModel
	Support MissionarySupport `json:"support"`
}

// NewApplicationLogic 创建宣教士申请业务逻辑
func NewApplicationLogic(db *gorm.DB, supportLogic *SupportLogic) *ApplicationLogic {
	return &ApplicationLogic{db: db, supportLogic: supportLogic}
}

// SubmitApplication 提交宣教士申请，初始状态为待审核
func (a *ApplicationLogic) SubmitApplication(userId string, application *model.MissionaryApplicationModel) error {
	if userId == "" {
		return ErrUnauthenticated
	}
	if application.Name == "" {
		return errors.New("姓名不能为空")
	}

	application.UserId = userId
	application.Status = model.ApplicationStatusPending

	if err := a.db.Create(application).Error; err != nil {
		return fmt.Errorf("创建申请失败: %w", err)
	}

	return nil
}

// ReviewApplication 审核申请，批准或拒绝均为终态
func (a *ApplicationLogic) ReviewApplication(id int64, approved bool) (*model.MissionaryApplicationModel, error) {
	var application model.MissionaryApplicationModel
	if err := a.db.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("查询申请失败: %w", err)
	}

	if application.Status != model.ApplicationStatusPending {
		return nil, ErrApplicationReviewed
	}

	newStatus := model.ApplicationStatusRejected
	if approved {
		newStatus = model.ApplicationStatusApproved
	}

	if err := a.db.Model(&application).Update("status", newStatus).Error; err != nil {
		return nil, fmt.Errorf("更新申请状态失败: %w", err)
	}
	application.Status = newStatus

	return &application, nil
}

// GetMissionaries 获取已批准的宣教士列表，附带批量聚合的支持情况
func (a *ApplicationLogic) GetMissionaries() ([]Missionary, error) {
	var applications []model.MissionaryApplicationModel
	if err := a.db.Where("status = ?", model.ApplicationStatusApproved).
		Order("start_date DESC").
		Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("获取宣教士列表失败: %w", err)
	}

	missionaryIds := make([]int64, len(applications))
	for n, application := range applications {
		missionaryIds[n] = application.Id
	}

	support, err := a.supportLogic.AggregateMissionariesSupport(missionaryIds)
	if err != nil {
		return nil, err
	}

	result := make([]Missionary, len(applications))
	for n, application := range applications {
		result[n] = Missionary{
			MissionaryApplicationModel: application,
			Support:                    support[application.Id],
		}
	}

	return result, nil
}
