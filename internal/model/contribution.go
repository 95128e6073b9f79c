package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContributionModel 项目捐助记录
type ContributionModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserId    string          `json:"user_id" gorm:"not null;index"`
	ProjectId int64           `json:"project_id" gorm:"not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`

	// 状态
	Status ContributionStatus `json:"status" gorm:"default:'pending'"`

	// 支付渠道标识
	PaymentMethod string `json:"payment_method"`

	// 客户端幂等键，重复提交时返回已有记录
	IdempotencyKey *string `json:"idempotency_key,omitempty" gorm:"uniqueIndex"`
}

// ContributionStatus 捐助状态
type ContributionStatus string

const (
	ContributionStatusPending   ContributionStatus = "pending"   // 待确认
	ContributionStatusConfirmed ContributionStatus = "confirmed" // 已确认
	ContributionStatusCancelled ContributionStatus = "cancelled" // 已取消
)

// TableName 自定义表名
func (ContributionModel) TableName() string {
	return "project_contributions"
}
