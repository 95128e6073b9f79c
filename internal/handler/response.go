package handler

import (
	"errors"
	"net/http"

	"github.com/gabgmont/go-globe/internal/logic"
	"github.com/gin-gonic/gin"
)

// Response 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Pagination 分页信息结构
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// respondError 将业务错误映射为HTTP响应
func respondError(c *gin.Context, err error) {
	var exceedsGoal *logic.ExceedsGoalError
	if errors.As(err, &exceedsGoal) {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: exceedsGoal.Error(),
			Data:    gin.H{"remaining": exceedsGoal.Remaining},
		})
		return
	}

	switch {
	case errors.Is(err, logic.ErrUnauthenticated):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, logic.ErrForbidden):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, logic.ErrProjectNotFound),
		errors.Is(err, logic.ErrSupportNotFound),
		errors.Is(err, logic.ErrMissionNotFound),
		errors.Is(err, logic.ErrMissionaryNotFound),
		errors.Is(err, logic.ErrApplicationNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, logic.ErrNotCancellable),
		errors.Is(err, logic.ErrApplicationReviewed):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, logic.ErrInvalidAmount),
		errors.Is(err, logic.ErrBelowMinimum),
		errors.Is(err, logic.ErrApplicationNotApproved):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, logic.ErrRemoteUnavailable):
		ErrorResponse(c, http.StatusServiceUnavailable, err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

// currentUser 获取当前用户标识，由前置身份网关写入请求头
func currentUser(c *gin.Context) string {
	return c.GetHeader("X-User-Id")
}
