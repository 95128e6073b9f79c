package task

import (
	"time"

	"github.com/gabgmont/go-globe/internal/config"
	"github.com/gabgmont/go-globe/internal/logger"
	"github.com/gabgmont/go-globe/internal/model"
	"github.com/go-co-op/gocron/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectFinishJob 项目完成任务
// 提交路径在达标时已即时完成项目，此任务是兜底：
// 扫描进行中的项目，把已确认总额达到目标的项目标记为已完成。
type ProjectFinishJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewProjectFinishJob 创建项目完成任务
func NewProjectFinishJob(db *gorm.DB, cfg *config.Config) *ProjectFinishJob {
	return &ProjectFinishJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *ProjectFinishJob) GetName() string {
	return "project_finish_updater"
}

// GetSchedule 获取调度配置
func (j *ProjectFinishJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute 执行任务
func (j *ProjectFinishJob) Execute() {
	logger.Info("Starting project finish task")

	var projects []model.ProjectModel
	if err := j.db.Where("status = ?", model.ProjectStatusActive).Find(&projects).Error; err != nil {
		logger.Error("Failed to fetch active projects: %v", err)
		return
	}
	if len(projects) == 0 {
		return
	}

	projectIds := make([]int64, len(projects))
	for n, project := range projects {
		projectIds[n] = project.Id
	}

	// 一次取回全部已确认捐助，按项目折算总额
	var contributions []model.ContributionModel
	if err := j.db.Where("project_id IN ? AND status = ?", projectIds, model.ContributionStatusConfirmed).
		Find(&contributions).Error; err != nil {
		logger.Error("Failed to fetch contributions: %v", err)
		return
	}

	totals := make(map[int64]decimal.Decimal, len(projects))
	for _, contribution := range contributions {
		totals[contribution.ProjectId] = totals[contribution.ProjectId].Add(contribution.Amount)
	}

	finishedCount := 0

	for _, project := range projects {
		if totals[project.Id].LessThan(project.Goal()) {
			continue
		}

		if err := j.db.Model(&project).Update("status", model.ProjectStatusCompleted).Error; err != nil {
			logger.Error("Failed to mark project %d as completed: %v", project.Id, err)
			continue
		}

		logger.Info("Project %d reached its goal: %s/%s",
			project.Id, totals[project.Id].String(), project.Goal().String())
		finishedCount++
	}

	logger.Info("Project finish task completed. Finished %d projects", finishedCount)
}
