package task

import (
	"time"

	"github.com/gabgmont/go-globe/internal/config"
	"github.com/gabgmont/go-globe/internal/logger"
	"github.com/gabgmont/go-globe/internal/logic"
	"github.com/go-co-op/gocron/v2"
)

// IndicatorRefreshJob 站点指标预热任务
// 按指标缓存有效期周期性重算，落地页读取时基本命中缓存。
type IndicatorRefreshJob struct {
	indicators *logic.IndicatorLogic
	config     *config.Config
}

// NewIndicatorRefreshJob 创建站点指标预热任务
func NewIndicatorRefreshJob(indicators *logic.IndicatorLogic, cfg *config.Config) *IndicatorRefreshJob {
	return &IndicatorRefreshJob{
		indicators: indicators,
		config:     cfg,
	}
}

// GetName 获取任务名称
func (j *IndicatorRefreshJob) GetName() string {
	return "indicator_refresher"
}

// GetSchedule 获取调度配置
func (j *IndicatorRefreshJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.IndicatorTTL) * time.Second)
}

// Execute 执行任务
func (j *IndicatorRefreshJob) Execute() {
	indicators, err := j.indicators.Refresh()
	if err != nil {
		logger.Error("Failed to refresh indicators: %v", err)
		return
	}

	logger.Info("Indicators refreshed: %d missionaries, %d countries, %d projects, %s funded",
		indicators.ActiveMissionaries, indicators.CountriesAchieved,
		indicators.ProjectsCreated, indicators.AmountFunded.String())
}
