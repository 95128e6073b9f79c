package logic

import (
	"errors"
	"fmt"

	"github.com/gabgmont/go-globe/internal/model"
	"gorm.io/gorm"
)

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	db                *gorm.DB
	contributionLogic *ContributionLogic
}

// ProjectWithProgress 项目及其筹款进度
type ProjectWithProgress struct {
	model.ProjectModel
	Progress ProjectProgress     `json:"progress"`
	Mission  *model.MissionModel `json:"mission,omitempty"`
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(db *gorm.DB, contributionLogic *ContributionLogic) *ProjectLogic {
	return &ProjectLogic{db: db, contributionLogic: contributionLogic}
}

// CreateProject 创建项目
// 项目必须挂在发起人自己的宣教工场下；目标类型决定哪一个目标字段生效。
func (p *ProjectLogic) CreateProject(userId string, project *model.ProjectModel) error {
	if userId == "" {
		return ErrUnauthenticated
	}
	if err := p.validateProject(project); err != nil {
		return err
	}

	var mission model.MissionModel
	if err := p.db.First(&mission, project.MissionId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMissionNotFound
		}
		return fmt.Errorf("查询宣教工场失败: %w", err)
	}
	if mission.UserId != userId {
		return ErrForbidden
	}

	project.Status = model.ProjectStatusActive

	if err := p.db.Create(project).Error; err != nil {
		return fmt.Errorf("创建项目失败: %w", err)
	}

	return nil
}

// GetProjects 获取进行中的项目列表，按创建时间倒序，附带批量聚合的筹款进度
func (p *ProjectLogic) GetProjects() ([]ProjectWithProgress, error) {
	var projects []model.ProjectModel
	if err := p.db.Where("status = ?", model.ProjectStatusActive).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("获取项目列表失败: %w", err)
	}

	projectIds := make([]int64, len(projects))
	missionIds := make([]int64, 0, len(projects))
	seen := make(map[int64]struct{})
	for n, project := range projects {
		projectIds[n] = project.Id
		if _, ok := seen[project.MissionId]; !ok {
			seen[project.MissionId] = struct{}{}
			missionIds = append(missionIds, project.MissionId)
		}
	}

	progress, err := p.contributionLogic.AggregateProjectsProgress(projectIds)
	if err != nil {
		return nil, err
	}

	missions := make(map[int64]*model.MissionModel, len(missionIds))
	if len(missionIds) > 0 {
		var rows []model.MissionModel
		if err := p.db.Where("id IN ?", missionIds).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("获取宣教工场列表失败: %w", err)
		}
		for n := range rows {
			missions[rows[n].Id] = &rows[n]
		}
	}

	result := make([]ProjectWithProgress, len(projects))
	for n, project := range projects {
		result[n] = ProjectWithProgress{
			ProjectModel: project,
			Progress:     progress[project.Id],
			Mission:      missions[project.MissionId],
		}
	}

	return result, nil
}

// GetProject 获取项目详情，附带筹款进度
func (p *ProjectLogic) GetProject(id int64) (*ProjectWithProgress, error) {
	var project model.ProjectModel
	if err := p.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("获取项目详情失败: %w", err)
	}

	progress, err := p.contributionLogic.AggregateProjectProgress(id)
	if err != nil {
		return nil, err
	}

	var mission model.MissionModel
	if err := p.db.First(&mission, project.MissionId).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询宣教工场失败: %w", err)
	}

	return &ProjectWithProgress{
		ProjectModel: project,
		Progress:     *progress,
		Mission:      &mission,
	}, nil
}

// validateProject 验证项目数据
func (p *ProjectLogic) validateProject(project *model.ProjectModel) error {
	if project.Name == "" {
		return errors.New("项目名称不能为空")
	}
	switch project.ObjectiveType {
	case model.ObjectiveTypeFinancial:
		if !project.FinancialGoal.IsPositive() {
			return errors.New("资金目标必须大于0")
		}
	case model.ObjectiveTypeMaterial:
		if project.MaterialGoal <= 0 {
			return errors.New("物资目标必须大于0")
		}
	default:
		return errors.New("无效的目标类型")
	}
	return nil
}
