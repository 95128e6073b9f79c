package logic

import (
	"testing"
	"time"

	"github.com/gabgmont/go-globe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newIndicatorLogic(t *testing.T, db *gorm.DB) *IndicatorLogic {
	t.Helper()
	i := NewIndicatorLogic(db, time.Minute)
	t.Cleanup(i.Release)
	return i
}

func TestComputeIndicatorsEmpty(t *testing.T) {
	db := newTestDB(t)
	i := newIndicatorLogic(t, db)

	indicators, err := i.ComputeIndicators()
	require.NoError(t, err)
	assert.EqualValues(t, 0, indicators.ActiveMissionaries)
	assert.EqualValues(t, 0, indicators.CountriesAchieved)
	assert.EqualValues(t, 0, indicators.ProjectsCreated)
	assert.True(t, indicators.AmountFunded.IsZero())
}

func TestComputeIndicatorsCountriesCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	i := newIndicatorLogic(t, db)

	for _, location := range []string{"Brazil", "Brazil", "brazil"} {
		require.NoError(t, db.Create(&model.MissionModel{
			UserId:                  "missionary-1",
			MissionaryApplicationId: 1,
			Name:                    "社区服务",
			Location:                location,
		}).Error)
	}

	indicators, err := i.ComputeIndicators()
	require.NoError(t, err)
	// location 原文去重，大小写不同的拼写算两个国家
	assert.EqualValues(t, 2, indicators.CountriesAchieved)
}

func TestComputeIndicatorsUnfilteredCounts(t *testing.T) {
	db := newTestDB(t)
	i := newIndicatorLogic(t, db)

	// 申请数不按审核状态过滤
	createApplication(t, db, "missionary-1", model.ApplicationStatusApproved)
	createApplication(t, db, "missionary-2", model.ApplicationStatusPending)
	createApplication(t, db, "missionary-3", model.ApplicationStatusRejected)

	// 项目数包含已完成项目
	completed := createProject(t, db, model.ObjectiveTypeFinancial, "100")
	require.NoError(t, db.Model(completed).Update("status", model.ProjectStatusCompleted).Error)
	createProject(t, db, model.ObjectiveTypeFinancial, "1000")

	indicators, err := i.ComputeIndicators()
	require.NoError(t, err)
	assert.EqualValues(t, 3, indicators.ActiveMissionaries)
	assert.EqualValues(t, 2, indicators.ProjectsCreated)
}

func TestComputeIndicatorsAmountFunded(t *testing.T) {
	db := newTestDB(t)
	i := newIndicatorLogic(t, db)

	// 资金总额合并两张表且不过滤状态
	require.NoError(t, db.Create(&model.SupportModel{
		UserId: "user-1", MissionaryId: 1, Amount: dec(t, "100"),
		IsRecurring: true, Status: model.SupportStatusConfirmed,
	}).Error)
	require.NoError(t, db.Create(&model.SupportModel{
		UserId: "user-2", MissionaryId: 1, Amount: dec(t, "30"),
		IsRecurring: true, Status: model.SupportStatusCancelled,
	}).Error)
	require.NoError(t, db.Create(&model.ContributionModel{
		UserId: "user-1", ProjectId: 1, Amount: dec(t, "50"),
		Status: model.ContributionStatusConfirmed,
	}).Error)
	require.NoError(t, db.Create(&model.ContributionModel{
		UserId: "user-3", ProjectId: 1, Amount: dec(t, "20"),
		Status: model.ContributionStatusPending,
	}).Error)

	indicators, err := i.ComputeIndicators()
	require.NoError(t, err)
	assert.True(t, indicators.AmountFunded.Equal(dec(t, "200")), "amountFunded=%s", indicators.AmountFunded)
}

func TestComputeIndicatorsAmountFundedSingleCollection(t *testing.T) {
	db := newTestDB(t)
	i := newIndicatorLogic(t, db)

	// 一张表为空时另一张表的总额仍然计入
	require.NoError(t, db.Create(&model.ContributionModel{
		UserId: "user-1", ProjectId: 1, Amount: dec(t, "75"),
		Status: model.ContributionStatusConfirmed,
	}).Error)

	indicators, err := i.ComputeIndicators()
	require.NoError(t, err)
	assert.True(t, indicators.AmountFunded.Equal(dec(t, "75")))
}

func TestComputeIndicatorsCache(t *testing.T) {
	db := newTestDB(t)
	i := newIndicatorLogic(t, db)

	indicators, err := i.ComputeIndicators()
	require.NoError(t, err)
	assert.EqualValues(t, 0, indicators.ProjectsCreated)

	createProject(t, db, model.ObjectiveTypeFinancial, "1000")

	// TTL 内命中缓存，看不到新项目
	cached, err := i.ComputeIndicators()
	require.NoError(t, err)
	assert.EqualValues(t, 0, cached.ProjectsCreated)

	// 失效后重新计算
	i.Invalidate()
	fresh, err := i.ComputeIndicators()
	require.NoError(t, err)
	assert.EqualValues(t, 1, fresh.ProjectsCreated)
}
