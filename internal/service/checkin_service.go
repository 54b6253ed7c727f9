package service

import (
	"context"
	"errors"
	"fmt"
	"habit_tracker/internal/model"
	"habit_tracker/internal/repository"
	"habit_tracker/internal/util"
	"habit_tracker/pkg/monitoring"
	"habit_tracker/pkg/tracing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

type CheckinService struct {
	checkinRepo *repository.CheckinRepository
	habitRepo   *repository.HabitRepository
	now         func() time.Time
}

func NewCheckinService(checkinRepo *repository.CheckinRepository, habitRepo *repository.HabitRepository) *CheckinService {
	return &CheckinService{
		checkinRepo: checkinRepo,
		habitRepo:   habitRepo,
		now:         time.Now,
	}
}

// CheckIn 为习惯打卡。date 为空时取当天。
// 习惯不存在返回 ErrHabitNotFound；日期格式错误返回 ErrInvalidDate；
// 当天已打卡返回 ErrAlreadyCheckedIn（包括并发请求被唯一索引拦下的情况）
func (s *CheckinService) CheckIn(ctx context.Context, habitID uint, date string) (checkin *model.Checkin, err error) {
	ctx, span := tracing.StartSpan(ctx, "CheckinService.CheckIn", attribute.Int64("habit.id", int64(habitID)))
	defer func() { tracing.EndSpan(span, err) }()

	habit, err := s.habitRepo.FindByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			monitoring.CheckinCounter.WithLabelValues("habit_not_found").Inc()
			return nil, util.ErrHabitNotFound
		}
		return nil, err
	}

	day := model.NewDate(s.now())
	if date != "" {
		day, err = model.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", util.ErrInvalidDate, date)
		}
	}

	exists, err := s.checkinRepo.ExistsByHabitIDAndDate(ctx, habitID, day)
	if err != nil {
		return nil, err
	}
	if exists {
		monitoring.CheckinCounter.WithLabelValues("duplicate").Inc()
		return nil, util.ErrAlreadyCheckedIn
	}

	checkin = &model.Checkin{HabitID: habit.ID, Date: day}
	if err := s.checkinRepo.Create(ctx, checkin); err != nil {
		if errors.Is(err, repository.ErrDuplicateCheckin) {
			monitoring.CheckinCounter.WithLabelValues("duplicate").Inc()
			return nil, util.ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("create check-in: %w", err)
	}
	checkin.Habit = habit

	monitoring.CheckinCounter.WithLabelValues("created").Inc()
	return checkin, nil
}

// ListCheckins 查询习惯的打卡记录。startDate 和 endDate 同时给出时按闭区间过滤，
// 只给出其中一个时忽略。不校验习惯是否存在
func (s *CheckinService) ListCheckins(ctx context.Context, habitID uint, startDate, endDate string) ([]model.Checkin, error) {
	if startDate == "" || endDate == "" {
		return s.checkinRepo.FindByHabitID(ctx, habitID)
	}

	start, err := model.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate %q", util.ErrInvalidDate, startDate)
	}
	end, err := model.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate %q", util.ErrInvalidDate, endDate)
	}

	return s.checkinRepo.FindByHabitIDAndDateBetween(ctx, habitID, start, end)
}
