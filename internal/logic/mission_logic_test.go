package logic

import (
	"testing"

	"github.com/gabgmont/go-globe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMissionRequiresApprovedApplication(t *testing.T) {
	db := newTestDB(t)
	m := NewMissionLogic(db)

	pending := createApplication(t, db, "missionary-1", model.ApplicationStatusPending)

	mission := &model.MissionModel{
		MissionaryApplicationId: pending.Id,
		Name:                    "社区服务",
		Location:                "Brazil",
	}
	err := m.CreateMission("missionary-1", mission)
	assert.ErrorIs(t, err, ErrApplicationNotApproved)

	// 他人的申请不能用来建工场
	approved := createApplication(t, db, "missionary-2", model.ApplicationStatusApproved)
	mission.MissionaryApplicationId = approved.Id
	err = m.CreateMission("missionary-1", mission)
	assert.ErrorIs(t, err, ErrForbidden)

	err = m.CreateMission("missionary-2", mission)
	require.NoError(t, err)
	assert.Equal(t, "missionary-2", mission.UserId)
}

func TestCreateProjectUnderOwnMission(t *testing.T) {
	db := newTestDB(t)
	c := NewContributionLogic(db, dec(t, "10"))
	p := NewProjectLogic(db, c)

	approved := createApplication(t, db, "missionary-1", model.ApplicationStatusApproved)
	mission := &model.MissionModel{
		UserId:                  "missionary-1",
		MissionaryApplicationId: approved.Id,
		Name:                    "社区服务",
		Location:                "Brazil",
	}
	require.NoError(t, db.Create(mission).Error)

	project := &model.ProjectModel{
		MissionId:     mission.Id,
		Name:          "水井建设",
		ObjectiveType: model.ObjectiveTypeFinancial,
		FinancialGoal: dec(t, "1000"),
	}
	err := p.CreateProject("user-2", project)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, p.CreateProject("missionary-1", project))
	assert.Equal(t, model.ProjectStatusActive, project.Status)

	// 列表附带批量聚合的进度
	_, err = c.SubmitContribution("user-1", project.Id, dec(t, "100"), "online", nil)
	require.NoError(t, err)

	projects, err := p.GetProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.True(t, projects[0].Progress.Progress.Equal(dec(t, "100")))
	assert.EqualValues(t, 1, projects[0].Progress.Supporters)
	require.NotNil(t, projects[0].Mission)
	assert.Equal(t, mission.Id, projects[0].Mission.Id)
}
