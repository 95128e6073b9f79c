package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

// 请求模型

// SubmitContributionRequest 提交捐助请求
type SubmitContributionRequest struct {
	ProjectId      int64           `json:"project_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"payment_method"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// CreateSupportRequest 创建支持请求
type CreateSupportRequest struct {
	MissionaryId   int64           `json:"missionary_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	IsRecurring    bool            `json:"is_recurring"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	MissionId     int64           `json:"mission_id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	ObjectiveType string          `json:"objective_type" binding:"required"`
	FinancialGoal decimal.Decimal `json:"financial_goal"`
	MaterialGoal  int64           `json:"material_goal"`
	ImageURL      string          `json:"image_url"`
}

// CreateMissionRequest 创建宣教工场请求
type CreateMissionRequest struct {
	MissionaryApplicationId int64  `json:"missionary_application_id" binding:"required"`
	Name                    string `json:"name" binding:"required"`
	Description             string `json:"description"`
	Location                string `json:"location" binding:"required"`
	Category                string `json:"category"`
}

// SubmitApplicationRequest 提交宣教士申请请求
type SubmitApplicationRequest struct {
	Name            string    `json:"name" binding:"required"`
	Description     string    `json:"description"`
	CurrentLocation string    `json:"current_location"`
	WorkCategory    string    `json:"work_category"`
	StartDate       time.Time `json:"start_date"`
	PhotoURL        string    `json:"photo_url"`
}

// ReviewApplicationRequest 审核宣教士申请请求
type ReviewApplicationRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
