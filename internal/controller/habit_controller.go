package controller

import (
	"errors"
	"habit_tracker/internal/model"
	"habit_tracker/internal/service"
	"habit_tracker/internal/util"
	"habit_tracker/pkg/logger"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HabitController struct {
	HabitService *service.HabitService
}

func NewHabitController(habitService *service.HabitService) *HabitController {
	return &HabitController{HabitService: habitService}
}

type CreateHabitRequest struct {
	Name      string     `json:"name" example:"Run"`
	// RFC 3339，或不带时区的 2024-05-01T10:00:00（按服务器本地时间）
	CreatedAt *model.Timestamp `json:"createdAt,omitempty" swaggertype:"string"`
}

// @Summary 获取所有习惯
// @Tags 习惯
// @Produce json
// @Success 200 {array} model.Habit
// @Router /habits [get]
func (c *HabitController) ListHabits(ctx *gin.Context) {
	habits, err := c.HabitService.ListHabits(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, habits)
}

// @Summary 创建习惯
// @Description 名称不做唯一性校验，createdAt 缺省为当前时间
// @Tags 习惯
// @Accept json
// @Produce json
// @Param habit body CreateHabitRequest true "习惯"
// @Success 200 {object} model.Habit
// @Failure 400 {string} string "请求体格式错误"
// @Router /habits [post]
func (c *HabitController) CreateHabit(ctx *gin.Context) {
	var req CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var createdAt *time.Time
	if req.CreatedAt != nil {
		createdAt = &req.CreatedAt.Time
	}

	habit, err := c.HabitService.CreateHabit(ctx.Request.Context(), req.Name, createdAt)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, habit)
}

// @Summary 获取习惯详情
// @Tags 习惯
// @Produce json
// @Param id path int true "习惯ID"
// @Success 200 {object} model.Habit
// @Failure 404 "习惯不存在"
// @Router /habits/{id} [get]
func (c *HabitController) GetHabit(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, util.MsgInvalidID)
		return
	}

	habit, err := c.HabitService.GetHabit(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrHabitNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, habit)
}

// @Summary 删除习惯
// @Description 同时删除该习惯的所有打卡记录
// @Tags 习惯
// @Produce plain
// @Param id path int true "习惯ID"
// @Success 200 {string} string "Habit deleted successfully"
// @Failure 404 "习惯不存在"
// @Failure 500 {string} string "Error deleting habit: ..."
// @Router /habits/{id} [delete]
func (c *HabitController) DeleteHabit(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, util.MsgInvalidID)
		return
	}

	logger.Log.Info("Attempting to delete habit", zap.Uint("habit_id", id))

	err := c.HabitService.DeleteHabit(ctx.Request.Context(), id)
	switch {
	case errors.Is(err, util.ErrHabitNotFound):
		logger.Log.Warn("Habit not found", zap.Uint("habit_id", id))
		util.NotFound(ctx)
	case err != nil:
		logger.Log.Error("Error deleting habit", zap.Uint("habit_id", id), zap.Error(err))
		util.Message(ctx, http.StatusInternalServerError, util.MsgDeleteFailed+err.Error())
	default:
		logger.Log.Info("Successfully deleted habit", zap.Uint("habit_id", id))
		util.Message(ctx, http.StatusOK, util.MsgHabitDeleted)
	}
}
