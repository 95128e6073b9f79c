package logic

import (
	"testing"

	"github.com/gabgmont/go-globe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSupportRequiresUser(t *testing.T) {
	db := newTestDB(t)
	s := NewSupportLogic(db)

	_, err := s.CreateSupport("", 1, dec(t, "50"), true, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreateSupportMissionaryNotFound(t *testing.T) {
	db := newTestDB(t)
	s := NewSupportLogic(db)

	_, err := s.CreateSupport("user-1", 42, dec(t, "50"), true, nil)
	assert.ErrorIs(t, err, ErrMissionaryNotFound)
}

func TestCreateSupportHasNoMinimum(t *testing.T) {
	db := newTestDB(t)
	s := NewSupportLogic(db)
	missionary := createApplication(t, db, "missionary-1", model.ApplicationStatusApproved)

	// 与项目捐助不同，支持不设最低金额
	support, err := s.CreateSupport("user-1", missionary.Id, dec(t, "1"), false, nil)
	require.NoError(t, err)
	assert.Equal(t, model.SupportStatusConfirmed, support.Status)
	assert.False(t, support.IsRecurring)

	_, err = s.CreateSupport("user-1", missionary.Id, dec(t, "0"), false, nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCancelSupportRecurringOnly(t *testing.T) {
	db := newTestDB(t)
	s := NewSupportLogic(db)
	missionary := createApplication(t, db, "missionary-1", model.ApplicationStatusApproved)

	oneTime, err := s.CreateSupport("user-1", missionary.Id, dec(t, "100"), false, nil)
	require.NoError(t, err)

	// 一次性支持不可取消
	_, err = s.CancelSupport(oneTime.Id, "user-1")
	assert.ErrorIs(t, err, ErrNotCancellable)

	var reloaded model.SupportModel
	require.NoError(t, db.First(&reloaded, oneTime.Id).Error)
	assert.Equal(t, model.SupportStatusConfirmed, reloaded.Status)
}

func TestCancelSupportIsTerminal(t *testing.T) {
	db := newTestDB(t)
	s := NewSupportLogic(db)
	missionary := createApplication(t, db, "missionary-1", model.ApplicationStatusApproved)

	support, err := s.CreateSupport("user-1", missionary.Id, dec(t, "100"), true, nil)
	require.NoError(t, err)

	cancelled, err := s.CancelSupport(support.Id, "user-1")
	require.NoError(t, err)
	assert.Equal(t, model.SupportStatusCancelled, cancelled.Status)

	// 已取消为终态，重复取消失败且状态不变
	_, err = s.CancelSupport(support.Id, "user-1")
	assert.ErrorIs(t, err, ErrNotCancellable)

	var reloaded model.SupportModel
	require.NoError(t, db.First(&reloaded, support.Id).Error)
	assert.Equal(t, model.SupportStatusCancelled, reloaded.Status)
}

func TestCancelSupportOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	s := NewSupportLogic(db)
	missionary := createApplication(t, db, "missionary-1", model.ApplicationStatusApproved)

	support, err := s.CreateSupport("user-1", missionary.Id, dec(t, "100"), true, nil)
	require.NoError(t, err)

	_, err = s.CancelSupport(support.Id, "user-2")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.CancelSupport(support.Id, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAggregateMissionarySupport(t *testing.T) {
	db := newTestDB(t)
	s := NewSupportLogic(db)
	missionary := createApplication(t, db, "missionary-1", model.ApplicationStatusApproved)
	other := createApplication(t, db, "missionary-2", model.ApplicationStatusApproved)

	_, err := s.CreateSupport("user-1", missionary.Id, dec(t, "100"), true, nil)
	require.NoError(t, err)
	_, err = s.CreateSupport("user-1", missionary.Id, dec(t, "50"), false, nil)
	require.NoError(t, err)
	_, err = s.CreateSupport("user-2", missionary.Id, dec(t, "200"), true, nil)
	require.NoError(t, err)

	// 已取消的支持不计入聚合
	cancelled, err := s.CreateSupport("user-3", missionary.Id, dec(t, "999"), true, nil)
	require.NoError(t, err)
	_, err = s.CancelSupport(cancelled.Id, "user-3")
	require.NoError(t, err)

	summary, err := s.AggregateMissionarySupport(missionary.Id)
	require.NoError(t, err)
	assert.True(t, summary.MonthlySupport.Equal(dec(t, "350")), "monthlySupport=%s", summary.MonthlySupport)
	assert.EqualValues(t, 2, summary.Supporters)

	// 没有支持记录的宣教士返回零值
	empty, err := s.AggregateMissionarySupport(other.Id)
	require.NoError(t, err)
	assert.True(t, empty.MonthlySupport.IsZero())
	assert.EqualValues(t, 0, empty.Supporters)
}

func TestCreateSupportIdempotencyKey(t *testing.T) {
	db := newTestDB(t)
	s := NewSupportLogic(db)
	missionary := createApplication(t, db, "missionary-1", model.ApplicationStatusApproved)

	key := "1f0a6a5e-83cf-4f0b-9f32-1f4f0fbd7c02"
	first, err := s.CreateSupport("user-1", missionary.Id, dec(t, "100"), true, &key)
	require.NoError(t, err)

	second, err := s.CreateSupport("user-1", missionary.Id, dec(t, "100"), true, &key)
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	var count int64
	require.NoError(t, db.Model(&model.SupportModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
