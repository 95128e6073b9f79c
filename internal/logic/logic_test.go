package logic

import (
	"testing"

	"github.com/gabgmont/go-globe/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	// 内存库只允许一个连接，避免连接池各自打开独立的空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.MissionaryApplicationModel{},
		&model.MissionModel{},
		&model.ProjectModel{},
		&model.ContributionModel{},
		&model.SupportModel{},
	))

	return db
}

func createProject(t *testing.T, db *gorm.DB, objectiveType model.ObjectiveType, goal string) *model.ProjectModel {
	t.Helper()

	project := &model.ProjectModel{
		MissionId:     1,
		Name:          "水井建设",
		ObjectiveType: objectiveType,
		Status:        model.ProjectStatusActive,
	}
	switch objectiveType {
	case model.ObjectiveTypeMaterial:
		project.MaterialGoal = decimal.RequireFromString(goal).IntPart()
	default:
		project.FinancialGoal = decimal.RequireFromString(goal)
	}
	require.NoError(t, db.Create(project).Error)

	return project
}

func createApplication(t *testing.T, db *gorm.DB, userId string, status model.ApplicationStatus) *model.MissionaryApplicationModel {
	t.Helper()

	application := &model.MissionaryApplicationModel{
		UserId: userId,
		Name:   "张伟",
		Status: status,
	}
	require.NoError(t, db.Create(application).Error)

	return application
}

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(value)
}
