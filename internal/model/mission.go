package model

import (
	"time"
)

// MissionModel 宣教工场，归属于一个已批准的宣教士申请
type MissionModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserId                  string `json:"user_id" gorm:"not null;index"`
	MissionaryApplicationId int64  `json:"missionary_application_id" gorm:"not null;index"`

	Name        string `json:"name" gorm:"not null" binding:"required"`
	Description string `json:"description" gorm:"type:text"`

	// 所在地，用于站点指标中的国家覆盖统计
	Location string `json:"location" gorm:"not null"`
	Category string `json:"category"`
}

// TableName 自定义表名
func (MissionModel) TableName() string {
	return "missions"
}
