package logic

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// 业务错误，handler 层据此映射 HTTP 状态码
var (
	ErrUnauthenticated        = errors.New("用户未登录")
	ErrInvalidAmount          = errors.New("金额无效，必须为正数")
	ErrBelowMinimum           = errors.New("金额低于最低捐助额")
	ErrNotCancellable         = errors.New("该支持不可取消")
	ErrForbidden              = errors.New("无权操作该资源")
	ErrProjectNotFound        = errors.New("项目不存在")
	ErrSupportNotFound        = errors.New("支持记录不存在")
	ErrMissionNotFound        = errors.New("宣教工场不存在")
	ErrMissionaryNotFound     = errors.New("宣教士不存在")
	ErrApplicationNotFound    = errors.New("申请不存在")
	ErrApplicationNotApproved = errors.New("申请尚未通过审核")
	ErrApplicationReviewed    = errors.New("申请已审核，不能重复审核")
	ErrRemoteUnavailable      = errors.New("数据存储暂不可用")
)

// ExceedsGoalError 捐助会超过项目目标，携带剩余可捐助额度供调用方提示
type ExceedsGoalError struct {
	Remaining decimal.Decimal
}

func (e *ExceedsGoalError) Error() string {
	return fmt.Sprintf("捐助金额超过项目目标，剩余可捐助额度: %s", e.Remaining.String())
}
