package controller

import (
	"errors"
	"habit_tracker/internal/service"
	"habit_tracker/internal/util"
	"io"

	"github.com/gin-gonic/gin"
)

type CheckinController struct {
	CheckinService *service.CheckinService
}

func NewCheckinController(checkinService *service.CheckinService) *CheckinController {
	return &CheckinController{CheckinService: checkinService}
}

type CheckinRequest struct {
	// YYYY-MM-DD，缺省为当天
	Date string `json:"date" example:"2024-05-01"`
}

// @Summary 习惯打卡
// @Description 每个习惯每天只能打卡一次，date 缺省为当天
// @Tags 打卡
// @Accept json
// @Produce json
// @Param habitId path int true "习惯ID"
// @Param body body CheckinRequest false "打卡日期"
// @Success 200 {object} model.Checkin
// @Failure 400 {string} string "Already checked in for this date"
// @Failure 404 "习惯不存在"
// @Router /habits/{habitId}/checkins [post]
func (c *CheckinController) CheckIn(ctx *gin.Context) {
	habitID, ok := util.ParseID(ctx.Param("habitId"))
	if !ok {
		util.BadRequest(ctx, util.MsgInvalidID)
		return
	}

	var req CheckinRequest
	// 允许空请求体
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}

	checkin, err := c.CheckinService.CheckIn(ctx.Request.Context(), habitID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrHabitNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadyCheckedIn):
			util.BadRequest(ctx, util.MsgAlreadyCheckedIn)
		case errors.Is(err, util.ErrInvalidDate):
			util.BadRequest(ctx, util.MsgInvalidDate)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, checkin)
}

// @Summary 获取打卡记录
// @Description startDate 和 endDate 同时提供时按闭区间过滤，否则返回全部
// @Tags 打卡
// @Produce json
// @Param habitId path int true "习惯ID"
// @Param startDate query string false "开始日期 YYYY-MM-DD"
// @Param endDate query string false "结束日期 YYYY-MM-DD"
// @Success 200 {array} model.Checkin
// @Failure 400 {string} string "Invalid date format, expected YYYY-MM-DD"
// @Router /habits/{habitId}/checkins [get]
func (c *CheckinController) ListCheckins(ctx *gin.Context) {
	habitID, ok := util.ParseID(ctx.Param("habitId"))
	if !ok {
		util.BadRequest(ctx, util.MsgInvalidID)
		return
	}

	checkins, err := c.CheckinService.ListCheckins(
		ctx.Request.Context(),
		habitID,
		ctx.Query("startDate"),
		ctx.Query("endDate"),
	)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			util.BadRequest(ctx, util.MsgInvalidDate)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, checkins)
}
