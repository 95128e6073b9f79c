package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectModel 宣教项目
type ProjectModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MissionId int64 `json:"mission_id" gorm:"not null;index"`

	// 基本信息
	Name        string `json:"name" gorm:"not null" binding:"required"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`

	// 目标类型决定 financial_goal 和 material_goal 中哪一个生效
	ObjectiveType ObjectiveType   `json:"objective_type" gorm:"not null"`
	FinancialGoal decimal.Decimal `json:"financial_goal" gorm:"type:decimal(14,2)"`
	MaterialGoal  int64           `json:"material_goal"`

	// 状态
	Status ProjectStatus `json:"status" gorm:"default:'active'"`
}

// ObjectiveType 项目目标类型
type ObjectiveType string

const (
	ObjectiveTypeFinancial ObjectiveType = "financial" // 资金目标
	ObjectiveTypeMaterial  ObjectiveType = "material"  // 物资目标，按件数计
)

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"    // 进行中
	ProjectStatusCompleted ProjectStatus = "completed" // 已完成
)

// Goal 按目标类型返回生效的目标值
func (p *ProjectModel) Goal() decimal.Decimal {
	if p.ObjectiveType == ObjectiveTypeMaterial {
		return decimal.NewFromInt(p.MaterialGoal)
	}
	return p.FinancialGoal
}

// TableName 自定义表名
func (ProjectModel) TableName() string {
	return "mission_projects"
}
