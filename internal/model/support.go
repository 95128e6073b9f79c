package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupportModel 宣教士支持记录（定期或一次性）
type SupportModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserId       string          `json:"user_id" gorm:"not null;index"`
	MissionaryId int64           `json:"missionary_id" gorm:"not null;index"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`

	// 是否为每月定期支持，只有定期支持可以取消
	IsRecurring bool `json:"is_recurring" gorm:"not null"`

	// 状态
	Status SupportStatus `json:"status" gorm:"default:'pending'"`

	// 客户端幂等键，重复提交时返回已有记录
	IdempotencyKey *string `json:"idempotency_key,omitempty" gorm:"uniqueIndex"`
}

// SupportStatus 支持状态
type SupportStatus string

const (
	SupportStatusPending   SupportStatus = "pending"   // 待确认
	SupportStatusConfirmed SupportStatus = "confirmed" // 已确认
	SupportStatusCancelled SupportStatus = "cancelled" // 已取消，终态
)

// TableName 自定义表名
func (SupportModel) TableName() string {
	return "missionary_supports"
}
