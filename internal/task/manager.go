package task

import (
	"github.com/gabgmont/go-globe/internal/config"
	"github.com/gabgmont/go-globe/internal/logger"
	"github.com/gabgmont/go-globe/internal/logic"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// Manager 任务管理器
type Manager struct {
	scheduler  gocron.Scheduler
	db         *gorm.DB
	indicators *logic.IndicatorLogic
	config     *config.Config
}

// Job 周期任务
type Job interface {
	GetName() string
	GetSchedule() gocron.JobDefinition
	Execute()
}

// NewManager 创建新的任务管理器
func NewManager(db *gorm.DB, indicators *logic.IndicatorLogic, cfg *config.Config) *Manager {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler:  s,
		db:         db,
		indicators: indicators,
		config:     cfg,
	}
}

// Start 启动任务管理器
func Start(db *gorm.DB, indicators *logic.IndicatorLogic, cfg *config.Config) *Manager {
	manager := NewManager(db, indicators, cfg)

	// 注册所有任务
	manager.RegisterJobs()

	// 启动调度器
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")

	return manager
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	m.registerJob(NewProjectFinishJob(m.db, m.config))
	m.registerJob(NewIndicatorRefreshJob(m.indicators, m.config))
}

// registerJob 注册单个任务
func (m *Manager) registerJob(job Job) {
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop 停止任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}
