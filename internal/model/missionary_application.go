package model

import (
	"time"
)

// MissionaryApplicationModel 宣教士申请，批准后才能创建宣教工场
type MissionaryApplicationModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserId string `json:"user_id" gorm:"not null;index"`

	// 基本信息
	Name            string    `json:"name" gorm:"not null" binding:"required"`
	Description     string    `json:"description" gorm:"type:text"`
	CurrentLocation string    `json:"current_location"`
	WorkCategory    string    `json:"work_category"`
	StartDate       time.Time `json:"start_date"`
	PhotoURL        string    `json:"photo_url"`

	// 审核状态，由差派机构控制
	Status ApplicationStatus `json:"status" gorm:"default:'pending'"`
}

// ApplicationStatus 申请审核状态
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"  // 待审核
	ApplicationStatusApproved ApplicationStatus = "approved" // 已批准
	ApplicationStatusRejected ApplicationStatus = "rejected" // 已拒绝
)

// TableName 自定义表名
func (MissionaryApplicationModel) TableName() string {
	return "missionary_applications"
}
