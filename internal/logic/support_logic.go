package logic

import (
	"errors"
	"fmt"

	"github.com/gabgmont/go-globe/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SupportLogic 宣教士支持业务逻辑
type SupportLogic struct {
	db *gorm.DB
}

// MissionarySupport 宣教士支持聚合结果
type MissionarySupport struct {
	MonthlySupport decimal.Decimal `json:"monthlySupport"`
	Supporters     int64           `json:"supporters"`
}

// NewSupportLogic 创建宣教士支持业务逻辑
func NewSupportLogic(db *gorm.DB) *SupportLogic {
	return &SupportLogic{db: db}
}

// CreateSupport 创建支持记录
// 与项目捐助不同，支持不设最低金额，创建即为已确认。
func (s *SupportLogic) CreateSupport(userId string, missionaryId int64, amount decimal.Decimal, isRecurring bool, idempotencyKey *string) (*model.SupportModel, error) {
	if userId == "" {
		return nil, ErrUnauthenticated
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var application model.MissionaryApplicationModel
	if err := s.db.First(&application, missionaryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissionaryNotFound
		}
		return nil, fmt.Errorf("查询宣教士失败: %w", err)
	}

	// 幂等键命中时直接返回已有记录
	if idempotencyKey != nil && *idempotencyKey != "" {
		var existing model.SupportModel
		err := s.db.Where("idempotency_key = ?", *idempotencyKey).First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("查询幂等记录失败: %w", err)
		}
	}

	support := &model.SupportModel{
		UserId:         userId,
		MissionaryId:   missionaryId,
		Amount:         amount,
		IsRecurring:    isRecurring,
		Status:         model.SupportStatusConfirmed,
		IdempotencyKey: idempotencyKey,
	}

	if err := s.db.Create(support).Error; err != nil {
		return nil, fmt.Errorf("创建支持记录失败: %w", err)
	}

	return support, nil
}

// CancelSupport 取消定期支持
// 只有本人发起的、定期的、未取消的支持可以取消；已取消为终态。
func (s *SupportLogic) CancelSupport(supportId int64, requesterId string) (*model.SupportModel, error) {
	if requesterId == "" {
		return nil, ErrUnauthenticated
	}

	var support model.SupportModel
	if err := s.db.First(&support, supportId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupportNotFound
		}
		return nil, fmt.Errorf("查询支持记录失败: %w", err)
	}

	if support.UserId != requesterId {
		return nil, ErrForbidden
	}
	if !support.IsRecurring || support.Status == model.SupportStatusCancelled {
		return nil, ErrNotCancellable
	}

	if err := s.db.Model(&support).Update("status", model.SupportStatusCancelled).Error; err != nil {
		return nil, fmt.Errorf("更新支持状态失败: %w", err)
	}
	support.Status = model.SupportStatusCancelled

	return &support, nil
}

// AggregateMissionarySupport 聚合单个宣教士的每月支持总额和支持者数量
func (s *SupportLogic) AggregateMissionarySupport(missionaryId int64) (*MissionarySupport, error) {
	result, err := s.AggregateMissionariesSupport([]int64{missionaryId})
	if err != nil {
		return nil, err
	}
	summary := result[missionaryId]
	return &summary, nil
}

// AggregateMissionariesSupport 批量聚合多个宣教士的支持情况
// 只统计已确认的支持；一次查询取回全部记录后在内存中分组折算。
func (s *SupportLogic) AggregateMissionariesSupport(missionaryIds []int64) (map[int64]MissionarySupport, error) {
	result := make(map[int64]MissionarySupport, len(missionaryIds))
	for _, id := range missionaryIds {
		result[id] = MissionarySupport{MonthlySupport: decimal.Zero}
	}
	if len(missionaryIds) == 0 {
		return result, nil
	}

	var supports []model.SupportModel
	if err := s.db.Where("missionary_id IN ? AND status = ?", missionaryIds, model.SupportStatusConfirmed).
		Find(&supports).Error; err != nil {
		return nil, fmt.Errorf("查询支持记录失败: %w", err)
	}

	supporters := make(map[int64]map[string]struct{}, len(missionaryIds))
	for _, row := range supports {
		summary := result[row.MissionaryId]
		summary.MonthlySupport = summary.MonthlySupport.Add(row.Amount)

		set, ok := supporters[row.MissionaryId]
		if !ok {
			set = make(map[string]struct{})
			supporters[row.MissionaryId] = set
		}
		set[row.UserId] = struct{}{}
		summary.Supporters = int64(len(set))

		result[row.MissionaryId] = summary
	}

	return result, nil
}

// GetUserSupports 分页获取用户发起的支持记录
func (s *SupportLogic) GetUserSupports(userId string, page, pageSize int) ([]model.SupportModel, int64, error) {
	var supports []model.SupportModel
	var total int64

	if err := s.db.Model(&model.SupportModel{}).Where("user_id = ?", userId).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.db.Where("user_id = ?", userId).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&supports).Error; err != nil {
		return nil, 0, err
	}

	return supports, total, nil
}
