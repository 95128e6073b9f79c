package logic

import (
	"errors"
	"fmt"

	"github.com/gabgmont/go-globe/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContributionLogic 捐助记录业务逻辑
type ContributionLogic struct {
	db *gorm.DB

	// 资金类项目的最低捐助额，含边界（等于最低额时通过）
	minAmount decimal.Decimal
}

// ProjectProgress 项目筹款进度聚合结果
type ProjectProgress struct {
	Progress   decimal.Decimal `json:"progress"`
	Supporters int64           `json:"supporters"`
}

// NewContributionLogic 创建捐助记录业务逻辑
func NewContributionLogic(db *gorm.DB, minAmount decimal.Decimal) *ContributionLogic {
	return &ContributionLogic{db: db, minAmount: minAmount}
}

// SubmitContribution 提交捐助
// 校验、目标上限检查和写入在同一事务内完成，事务内对项目行加锁，
// 避免并发提交同时通过上限检查导致超募。
func (c *ContributionLogic) SubmitContribution(userId string, projectId int64, amount decimal.Decimal, paymentMethod string, idempotencyKey *string) (*model.ContributionModel, error) {
	if userId == "" {
		return nil, ErrUnauthenticated
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	// 幂等键命中时直接返回已有记录，不重复写入
	if idempotencyKey != nil && *idempotencyKey != "" {
		var existing model.ContributionModel
		err := c.db.Where("idempotency_key = ?", *idempotencyKey).First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("查询幂等记录失败: %w", err)
		}
	}

	contribution := &model.ContributionModel{
		UserId:         userId,
		ProjectId:      projectId,
		Amount:         amount,
		Status:         model.ContributionStatusConfirmed,
		PaymentMethod:  paymentMethod,
		IdempotencyKey: idempotencyKey,
	}

	err := c.db.Transaction(func(tx *gorm.DB) error {
		var project model.ProjectModel
		q := tx
		// sqlite 单写者自然串行，无需行锁
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&project, projectId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return fmt.Errorf("查询项目失败: %w", err)
		}

		// 物资类按件数计，必须为整数
		if project.ObjectiveType == model.ObjectiveTypeMaterial && !amount.IsInteger() {
			return ErrInvalidAmount
		}

		// 事务内重新折算已确认总额，上限检查与写入之间不留窗口
		var confirmed []model.ContributionModel
		if err := tx.Where("project_id = ? AND status = ?", projectId, model.ContributionStatusConfirmed).
			Find(&confirmed).Error; err != nil {
			return fmt.Errorf("查询捐助记录失败: %w", err)
		}

		total := decimal.Zero
		for _, row := range confirmed {
			total = total.Add(row.Amount)
		}

		// 上限检查先于最低额检查，与线上行为一致
		goal := project.Goal()
		if total.Add(amount).GreaterThan(goal) {
			return &ExceedsGoalError{Remaining: goal.Sub(total)}
		}

		if project.ObjectiveType == model.ObjectiveTypeFinancial && amount.LessThan(c.minAmount) {
			return ErrBelowMinimum
		}

		if err := tx.Create(contribution).Error; err != nil {
			return fmt.Errorf("创建捐助记录失败: %w", err)
		}

		// 刚好达到目标时项目转为已完成
		if total.Add(amount).Equal(goal) && project.Status == model.ProjectStatusActive {
			if err := tx.Model(&project).Update("status", model.ProjectStatusCompleted).Error; err != nil {
				return fmt.Errorf("更新项目状态失败: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return contribution, nil
}

// AggregateProjectProgress 聚合单个项目的筹款进度和支持者数量
func (c *ContributionLogic) AggregateProjectProgress(projectId int64) (*ProjectProgress, error) {
	result, err := c.AggregateProjectsProgress([]int64{projectId})
	if err != nil {
		return nil, err
	}
	progress := result[projectId]
	return &progress, nil
}

// AggregateProjectsProgress 批量聚合多个项目的筹款进度
// 一次查询取回全部相关记录，在内存中按项目分组折算，
// 成本与捐助记录数线性相关，与项目数无关。
// 没有捐助记录的项目返回零值进度。
func (c *ContributionLogic) AggregateProjectsProgress(projectIds []int64) (map[int64]ProjectProgress, error) {
	result := make(map[int64]ProjectProgress, len(projectIds))
	for _, id := range projectIds {
		result[id] = ProjectProgress{Progress: decimal.Zero}
	}
	if len(projectIds) == 0 {
		return result, nil
	}

	var contributions []model.ContributionModel
	if err := c.db.Where("project_id IN ? AND status = ?", projectIds, model.ContributionStatusConfirmed).
		Find(&contributions).Error; err != nil {
		return nil, fmt.Errorf("查询捐助记录失败: %w", err)
	}

	supporters := make(map[int64]map[string]struct{}, len(projectIds))
	for _, row := range contributions {
		progress := result[row.ProjectId]
		progress.Progress = progress.Progress.Add(row.Amount)

		set, ok := supporters[row.ProjectId]
		if !ok {
			set = make(map[string]struct{})
			supporters[row.ProjectId] = set
		}
		set[row.UserId] = struct{}{}
		progress.Supporters = int64(len(set))

		result[row.ProjectId] = progress
	}

	return result, nil
}

// GetProjectContributions 分页获取项目捐助记录
func (c *ContributionLogic) GetProjectContributions(projectId int64, page, pageSize int) ([]model.ContributionModel, int64, error) {
	var contributions []model.ContributionModel
	var total int64

	if err := c.db.Model(&model.ContributionModel{}).Where("project_id = ?", projectId).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := c.db.Where("project_id = ?", projectId).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&contributions).Error; err != nil {
		return nil, 0, err
	}

	return contributions, total, nil
}

// GetUserContributions 分页获取用户捐助记录
func (c *ContributionLogic) GetUserContributions(userId string, page, pageSize int) ([]model.ContributionModel, int64, error) {
	var contributions []model.ContributionModel
	var total int64

	if err := c.db.Model(&model.ContributionModel{}).Where("user_id = ?", userId).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := c.db.Where("user_id = ?", userId).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&contributions).Error; err != nil {
		return nil, 0, err
	}

	return contributions, total, nil
}
